package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-appenv/classname"
	"github.com/MKhiriev/go-appenv/internal/config"
	"github.com/MKhiriev/go-appenv/env"
	"github.com/MKhiriev/go-appenv/internal/handler"
	"github.com/MKhiriev/go-appenv/internal/logger"
	"github.com/MKhiriev/go-appenv/internal/server"
	"github.com/MKhiriev/go-appenv/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("appenv-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// the dynamic namespaces are read once and stay fixed for the process lifetime
	snapshot, err := env.Load(context.Background(), env.DefaultSource(cfg.Env.Dir, cfg.Env.Mode), cfg.Env.Prefixes())
	if err != nil {
		log.Fatal().Err(err).Msg("error loading env")
	}

	merger, err := classname.LoadMerger(cfg.ClassNames.GroupTablePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading class name group table")
	}

	services, err := service.NewServices(snapshot, merger, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
