package service

import (
	"context"

	"github.com/MKhiriev/go-appenv/classname"
	"github.com/MKhiriev/go-appenv/env"
)

//go:generate mockgen -source=interfaces.go -destination=mock/service_mock.go -package=mock

// EnvService serves the dynamic environment namespaces read at start-up.
type EnvService interface {
	// PublicEnv returns every variable that may be shown to clients.
	PublicEnv(ctx context.Context) env.Mapping
	// Lookup returns a single variable of the given visibility or
	// ErrVariableNotFound. Private values must never reach a response.
	Lookup(ctx context.Context, visibility env.Visibility, key string) (string, error)
}

// ClassNameService merges class values into a single class attribute.
type ClassNameService interface {
	Merge(ctx context.Context, values ...classname.Value) string
}

// AppInfoService reports build information about the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClassNameServiceWrapper defines middleware composition for ClassNameService.
// Implementations wrap an existing ClassNameService to add behavior such as
// logging.
type ClassNameServiceWrapper interface {
	Wrap(ClassNameService) ClassNameService // returns a decorated ClassNameService applying additional behavior
}
