package service

import (
	"fmt"

	"github.com/MKhiriev/go-appenv/classname"
	"github.com/MKhiriev/go-appenv/internal/config"
	"github.com/MKhiriev/go-appenv/env"
	"github.com/MKhiriev/go-appenv/internal/logger"
)

type Services struct {
	EnvService       EnvService
	ClassNameService ClassNameService
	AppInfoService   AppInfoService
}

func NewServices(snapshot *env.Snapshot, merger *classname.Merger, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	envService, err := NewEnvService(snapshot, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating env service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	classNameService := NewClassNameLoggingService(logger).Wrap(NewClassNameService(merger, logger))

	return &Services{
		EnvService:       envService,
		ClassNameService: classNameService,
		AppInfoService:   appInfoService,
	}, nil
}
