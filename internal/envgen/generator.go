package envgen

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-appenv/env"
	"github.com/MKhiriev/go-appenv/internal/logger"
)

// Generator loads a snapshot from a source and writes the static packages.
type Generator struct {
	source   env.Source
	prefixes env.Prefixes
	opts     Options

	logger *logger.Logger
}

// NewGenerator returns a Generator. Options are validated on every run.
func NewGenerator(source env.Source, prefixes env.Prefixes, opts Options, logger *logger.Logger) *Generator {
	return &Generator{
		source:   source,
		prefixes: prefixes,
		opts:     opts,
		logger:   logger,
	}
}

// Run performs one load-render-write cycle.
func (g *Generator) Run(ctx context.Context) error {
	if g.prefixes.Private == "" {
		g.logger.Warn().Msg("no private prefix set: the private package receives every non-public variable of the build environment")
	}

	snapshot, err := env.Load(ctx, g.source, g.prefixes)
	if err != nil {
		return fmt.Errorf("error loading env: %w", err)
	}

	files, err := Generate(snapshot, g.opts)
	if err != nil {
		return fmt.Errorf("error generating env packages: %w", err)
	}

	if err := Write(ctx, files); err != nil {
		return fmt.Errorf("error writing env packages: %w", err)
	}

	for _, f := range files {
		event := g.logger.Info().
			Str("path", f.Path).
			Str("visibility", f.Visibility.String()).
			Int("constants", len(f.Keys))
		if len(f.Skipped) > 0 {
			event = event.Strs("skipped", f.Skipped)
		}
		event.Msg("env package generated")
	}

	return nil
}
