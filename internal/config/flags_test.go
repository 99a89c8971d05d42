package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Host: "", Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{"valid localhost", "localhost:8080", false, NetAddress{Host: "localhost", Port: 8080}},
		{"valid IPv4", "127.0.0.1:9090", false, NetAddress{Host: "127.0.0.1", Port: 9090}},
		{"all interfaces", ":8080", false, NetAddress{Port: 8080}},
		{"missing colon", "localhost8080", true, NetAddress{}},
		{"non-numeric port", "localhost:http", true, NetAddress{}},
		{"zero port", "localhost:0", true, NetAddress{}},
		{"port out of range", "localhost:70000", true, NetAddress{}},
		{"hostname is not an IP", "example.com:80", true, NetAddress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:9000",
		"-request-timeout", "15s",
		"-config", "/etc/appenv.json",
		"-app-version", "2.0.0",
		"-log-level", "warn",
		"-env-dir", "/srv",
		"-mode", "staging",
		"-public-prefix", "WEB_",
		"-private-prefix", "SRV_",
		"-group-table", "groups.yaml",
		"-out", "gen",
		"-private-package", "priv",
		"-public-package", "pub",
		"-watch",
		"-remote", "https://app.example.com",
	}

	cfg, err := parseFlags(newTestFlagSet(), args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/etc/appenv.json", cfg.JSONFilePath)
	assert.Equal(t, App{Version: "2.0.0", LogLevel: "warn"}, cfg.App)
	assert.Equal(t, Env{Dir: "/srv", Mode: "staging", PublicPrefix: "WEB_", PrivatePrefix: "SRV_"}, cfg.Env)
	assert.Equal(t, "groups.yaml", cfg.ClassNames.GroupTablePath)
	assert.Equal(t, Codegen{OutputDir: "gen", PrivatePackage: "priv", PublicPackage: "pub", Watch: true, RemoteURL: "https://app.example.com"}, cfg.Codegen)
}

func TestParseFlags_UsageNamesCommand(t *testing.T) {
	fs := newTestFlagSet()
	_, err := parseFlags(fs, nil)
	require.NoError(t, err)

	for _, name := range []string{"out", "private-package", "public-package", "watch", "remote"} {
		assert.Contains(t, fs.Lookup(name).Usage, "(envgen only)", name)
	}
	for _, name := range []string{"a", "request-timeout", "group-table"} {
		assert.Contains(t, fs.Lookup(name).Usage, "(server only)", name)
	}
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-a", "nope"})
	assert.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-unknown"})
	assert.Error(t, err)
}
