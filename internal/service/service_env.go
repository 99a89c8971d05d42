// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-appenv/env"
	"github.com/MKhiriev/go-appenv/internal/logger"
)

type envService struct {
	snapshot *env.Snapshot

	logger *logger.Logger
}

// NewEnvService serves the dynamic namespaces of snapshot. The snapshot is
// read once at start-up and never reloaded.
func NewEnvService(snapshot *env.Snapshot, logger *logger.Logger) (EnvService, error) {
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}

	logger.Info().
		Str("source", snapshot.SourceName()).
		Str("public_prefix", snapshot.Prefixes().Public).
		Int("public", snapshot.DynamicPublic().Len()).
		Int("private", snapshot.DynamicPrivate().Len()).
		Msg("env service created")

	return &envService{
		snapshot: snapshot,
		logger:   logger,
	}, nil
}

func (s *envService) PublicEnv(ctx context.Context) env.Mapping {
	return s.snapshot.DynamicPublic()
}

func (s *envService) Lookup(ctx context.Context, visibility env.Visibility, key string) (string, error) {
	if visibility != env.Private && visibility != env.Public {
		return "", fmt.Errorf("%w: %d", ErrUnknownVisibility, visibility)
	}

	value, ok := s.snapshot.Namespace(env.Dynamic, visibility).Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s variable %q", ErrVariableNotFound, visibility, key)
	}
	return value, nil
}
