// Command envgen writes the static environment namespaces as Go packages.
//
// Every variable visible at build time becomes a string constant in either
// the private or the public package, so the compiler can drop unused ones.
// With -watch the packages are regenerated whenever a .env file changes.
// With -remote the public variables of a running server override local ones.
//
//	//go:generate go run github.com/MKhiriev/go-appenv/cmd/envgen -out internal/appenv
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-appenv/internal/adapter"
	"github.com/MKhiriev/go-appenv/internal/config"
	"github.com/MKhiriev/go-appenv/env"
	"github.com/MKhiriev/go-appenv/internal/envgen"
	"github.com/MKhiriev/go-appenv/internal/logger"
	"github.com/MKhiriev/go-appenv/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("envgen")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("version", valueOrNA(buildVersion)).
		Str("date", valueOrNA(buildDate)).
		Str("commit", valueOrNA(buildCommit)).
		Msg("envgen build info")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	dotenv := env.NewDotenvSource(cfg.Env.Dir, cfg.Env.Mode)
	sources := []env.Source{dotenv, env.ProcessSource{}}

	if cfg.Codegen.RemoteURL != "" {
		serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.Config{
			BaseURL: cfg.Codegen.RemoteURL,
			Timeout: cfg.Server.RequestTimeout,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating server adapter")
		}
		sources = append(sources, adapter.NewRemoteSource(serverAdapter))
	}

	generator := envgen.NewGenerator(
		env.Layered(sources...),
		cfg.Env.Prefixes(),
		envgen.Options{
			OutputDir:      cfg.Codegen.OutputDir,
			PrivatePackage: cfg.Codegen.PrivatePackage,
			PublicPackage:  cfg.Codegen.PublicPackage,
		},
		log,
	)

	if err = generator.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error generating env packages")
	}

	if !cfg.Codegen.Watch {
		return
	}

	watcher := envgen.NewWatcher(cfg.Env.Dir, dotenv.FileNames(), generator.Run, log)
	if err = workers.NewWorkers(watcher).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error watching env files")
	}
}

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
