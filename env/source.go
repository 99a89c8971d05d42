package env

import (
	"context"
	"maps"
	"os"
	"strings"
)

// ProcessSource reads the environment of the running process.
type ProcessSource struct {
	// Environ returns "KEY=value" pairs. Defaults to [os.Environ].
	Environ func() []string
}

// Name implements [Source].
func (ProcessSource) Name() string {
	return "process"
}

// Load implements [Source]. Entries without '=' are ignored.
func (s ProcessSource) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	environ := s.Environ
	if environ == nil {
		environ = os.Environ
	}

	out := make(map[string]string)
	for _, kv := range environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out, nil
}

// MapSource serves a fixed set of variables.
type MapSource map[string]string

// Name implements [Source].
func (MapSource) Name() string {
	return "map"
}

// Load implements [Source].
func (s MapSource) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return maps.Clone(map[string]string(s)), nil
}

type layered struct {
	sources []Source
}

// Layered merges sources in order. A variable defined by a later source
// overrides the one defined by an earlier source.
func Layered(sources ...Source) Source {
	return &layered{sources: sources}
}

func (l *layered) Name() string {
	names := make([]string, 0, len(l.sources))
	for _, s := range l.sources {
		names = append(names, s.Name())
	}
	return strings.Join(names, "+")
}

func (l *layered) Load(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	for _, s := range l.sources {
		vars, err := s.Load(ctx)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, vars)
	}
	return out, nil
}

// DefaultSource loads .env files from dir for the given mode and lets the
// process environment override them.
func DefaultSource(dir, mode string) Source {
	return Layered(NewDotenvSource(dir, mode), ProcessSource{})
}
