// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotenvSource reads variables from .env files in Dir.
//
// Files are read in this order, later files overriding earlier ones:
//
//	.env
//	.env.local
//	.env.<mode>
//	.env.<mode>.local
//
// Missing files are skipped.
type DotenvSource struct {
	Dir  string
	Mode string
}

// NewDotenvSource returns a DotenvSource for dir and mode.
func NewDotenvSource(dir, mode string) *DotenvSource {
	return &DotenvSource{Dir: dir, Mode: mode}
}

// Name implements [Source].
func (s *DotenvSource) Name() string {
	return "dotenv"
}

// FileNames returns the candidate file names in load order.
func (s *DotenvSource) FileNames() []string {
	names := []string{".env", ".env.local"}
	if s.Mode != "" {
		names = append(names, ".env."+s.Mode, ".env."+s.Mode+".local")
	}
	return names
}

// Files returns the candidate file paths in load order.
func (s *DotenvSource) Files() []string {
	names := s.FileNames()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(s.Dir, name))
	}
	return paths
}

// Load implements [Source].
func (s *DotenvSource) Load(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	for _, path := range s.Files() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error checking env file %s: %w", path, err)
		}

		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("error parsing env file %s: %w", path, err)
		}
		maps.Copy(out, vars)
	}
	return out, nil
}
