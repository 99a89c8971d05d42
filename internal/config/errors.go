package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEnvConfigs indicates invalid env loader settings
	// (for example, conflicting public and private prefixes).
	ErrInvalidEnvConfigs = errors.New("invalid env configuration")
	// ErrInvalidCodegenConfigs indicates invalid code generator settings
	// (for example, a package name that is not a Go identifier).
	ErrInvalidCodegenConfigs = errors.New("invalid codegen configuration")
)
