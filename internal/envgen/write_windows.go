//go:build windows

package envgen

import (
	"fmt"
	"os"
)

// renameio does not support Windows.
func writeFile(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
