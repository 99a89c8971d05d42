package envgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-appenv/env"
)

const (
	publicFileMode  os.FileMode = 0o644
	privateFileMode os.FileMode = 0o600

	// privateIgnore keeps the private package out of version control.
	privateIgnore = "# Generated by envgen. Holds server-only values.\n*\n"
)

// Write stores files on disk, creating package directories as needed.
// Each file is replaced atomically, so readers never observe a partially
// written package.
//
// Private packages are readable by the owner only and get a .gitignore that
// excludes the whole directory.
func Write(ctx context.Context, files []File) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := filepath.Dir(f.Path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create package directory: %w", err)
		}

		mode := publicFileMode
		if f.Visibility == env.Private {
			mode = privateFileMode
			if err := writeFile(filepath.Join(dir, ".gitignore"), []byte(privateIgnore), publicFileMode); err != nil {
				return err
			}
		}
		if err := writeFile(f.Path, f.Source, mode); err != nil {
			return err
		}
	}
	return nil
}
