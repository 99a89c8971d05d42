// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"

	appenv "github.com/MKhiriev/go-appenv/env"
)

// StructuredConfig is the top-level configuration container for the
// go-appenv binaries. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Env controls where application environment variables are read from
	// and how they are split into public and private namespaces.
	Env Env `envPrefix:"APPENV_"`

	// ClassNames configures the class-name merge utility.
	ClassNames ClassNames `envPrefix:"CLASSNAMES_"`

	// Codegen configures the envgen static code generator.
	Codegen Codegen `envPrefix:"CODEGEN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m"). Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Env configures the application environment loader.
type Env struct {
	// Dir is the directory holding .env files.
	// Env: APPENV_DIR
	Dir string `env:"DIR"`

	// Mode selects the .env.<mode> files (e.g. "development", "production").
	// Env: APPENV_MODE
	Mode string `env:"MODE"`

	// PublicPrefix marks variables that may be exposed to browsers.
	// Env: APPENV_PUBLIC_PREFIX
	PublicPrefix string `env:"PUBLIC_PREFIX"`

	// PrivatePrefix, when set, restricts the private namespace to variables
	// starting with it.
	// Env: APPENV_PRIVATE_PREFIX
	PrivatePrefix string `env:"PRIVATE_PREFIX"`
}

// Prefixes converts the configured prefixes into [appenv.Prefixes].
func (e Env) Prefixes() appenv.Prefixes {
	return appenv.Prefixes{Public: e.PublicPrefix, Private: e.PrivatePrefix}
}

// ClassNames configures the class-name merge utility.
type ClassNames struct {
	// GroupTablePath points to a YAML group table, or is "default" for the
	// built-in layout table. When empty the Tailwind rules are used.
	// Env: CLASSNAMES_GROUP_TABLE
	GroupTablePath string `env:"GROUP_TABLE"`
}

// Codegen configures the envgen static code generator.
type Codegen struct {
	// OutputDir is the directory that receives one sub-directory per
	// generated package.
	// Env: CODEGEN_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`

	// PrivatePackage is the package name of the static private namespace.
	// Env: CODEGEN_PRIVATE_PACKAGE
	PrivatePackage string `env:"PRIVATE_PACKAGE"`

	// PublicPackage is the package name of the static public namespace.
	// Env: CODEGEN_PUBLIC_PACKAGE
	PublicPackage string `env:"PUBLIC_PACKAGE"`

	// Watch keeps envgen running and regenerates on .env file changes.
	// Env: CODEGEN_WATCH
	Watch bool `env:"WATCH"`

	// RemoteURL is the base URL of a running server whose public variables
	// are layered over the local ones.
	// Env: CODEGEN_REMOTE_URL
	RemoteURL string `env:"REMOTE_URL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flag.CommandLine, os.Args[1:]).
		withJSON().
		build()
}
