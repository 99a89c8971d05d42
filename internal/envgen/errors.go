package envgen

import "errors"

var (
	// ErrInvalidPackageName is returned when a package name is not a Go
	// identifier.
	ErrInvalidPackageName = errors.New("invalid package name")

	// ErrSamePackage is returned when both namespaces target one package.
	ErrSamePackage = errors.New("private and public namespaces must use different packages")

	// ErrNilSnapshot is returned by [Generate] when no snapshot is given.
	ErrNilSnapshot = errors.New("env snapshot is nil")
)
