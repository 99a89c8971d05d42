// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "info",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"APPENV_DIR":            "/srv/app",
		"APPENV_MODE":           "production",
		"APPENV_PUBLIC_PREFIX":  "CLIENT_",
		"APPENV_PRIVATE_PREFIX": "SERVER_ONLY_",

		"CLASSNAMES_GROUP_TABLE": "/etc/groups.yaml",

		"CODEGEN_OUTPUT_DIR":      "gen",
		"CODEGEN_PRIVATE_PACKAGE": "secrets",
		"CODEGEN_PUBLIC_PACKAGE":  "public",
		"CODEGEN_WATCH":           "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, Env{
		Dir:           "/srv/app",
		Mode:          "production",
		PublicPrefix:  "CLIENT_",
		PrivatePrefix: "SERVER_ONLY_",
	}, cfg.Env)

	assert.Equal(t, "/etc/groups.yaml", cfg.ClassNames.GroupTablePath)

	assert.Equal(t, Codegen{
		OutputDir:      "gen",
		PrivatePackage: "secrets",
		PublicPackage:  "public",
		Watch:          true,
	}, cfg.Codegen)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APPENV_MODE":    "test",
		"SERVER_ADDRESS": "localhost:8080",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Mode)
	assert.Empty(t, cfg.Env.Dir)
	assert.Empty(t, cfg.Env.PublicPrefix)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	assert.Equal(t, Codegen{}, cfg.Codegen)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "invalid_duration",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CODEGEN_WATCH": "sometimes",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"APP_VERSION",
	"APP_LOG_LEVEL",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"APPENV_DIR",
	"APPENV_MODE",
	"APPENV_PUBLIC_PREFIX",
	"APPENV_PRIVATE_PREFIX",

	"CLASSNAMES_GROUP_TABLE",

	"CODEGEN_OUTPUT_DIR",
	"CODEGEN_PRIVATE_PACKAGE",
	"CODEGEN_PUBLIC_PACKAGE",
	"CODEGEN_WATCH",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every config variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		// t.Setenv registers the restore of the original value
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
