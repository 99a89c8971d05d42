// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the HTTP API served by the appenv
// server.
//
// The primary abstraction is [ServerAdapter], which hides the REST transport
// from callers. [RemoteSource] turns an adapter into an env source, so the
// public namespace of a deployed server can feed the code generator.
//
// HTTP status codes are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-appenv/env"
)

// ServerAdapter defines communication with a running appenv server.
type ServerAdapter interface {
	// PublicEnv fetches the dynamic public namespace.
	PublicEnv(ctx context.Context) (env.Mapping, error)

	// PublicEnvVariable fetches a single public variable. Returns
	// [ErrNotFound] (wrapped) when the server does not know it.
	PublicEnvVariable(ctx context.Context, name string) (string, error)

	// MergeClassNames asks the server to merge class values. Each value must
	// be JSON-encodable: strings, numbers, booleans, nil, slices and
	// string-keyed maps.
	MergeClassNames(ctx context.Context, classes ...any) (string, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
