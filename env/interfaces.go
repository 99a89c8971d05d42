package env

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/source_mock.go -package=mock

import "context"

// Source provides raw environment variables.
//
// Load is called once per snapshot. Implementations must return a map that the
// caller is free to modify.
type Source interface {
	// Name returns a human-readable source name used in logs and errors.
	Name() string

	// Load reads every variable the source knows about.
	Load(ctx context.Context) (map[string]string, error)
}
