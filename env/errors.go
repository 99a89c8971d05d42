// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import "errors"

var (
	// ErrEmptyPublicPrefix is returned by [Prefixes.Validate] when no public
	// prefix is configured. Without it every variable would be public.
	ErrEmptyPublicPrefix = errors.New("public prefix must not be empty")

	// ErrPrefixConflict is returned by [Prefixes.Validate] when the private
	// prefix starts with the public prefix, which would make every private
	// variable public as well.
	ErrPrefixConflict = errors.New("private prefix must not start with public prefix")

	// ErrNilSource is returned by [Load] and [LoadEnv] when no source is given.
	ErrNilSource = errors.New("env source is nil")

	// ErrLoadingSource wraps any error returned by a [Source].
	ErrLoadingSource = errors.New("error loading env source")
)
