package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args into a new config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
//	-app-version application version
//	-log-level log level (debug, info, warn, error)
//	-env-dir directory with .env files
//	-mode env mode selecting .env.<mode> files
//	-public-prefix public variable prefix
//	-private-prefix private variable prefix
//	-group-table YAML class group table or "default" (server only)
//	-out generated code output directory (envgen only)
//	-private-package static private package name (envgen only)
//	-public-package static public package name (envgen only)
//	-watch regenerate on .env file changes (envgen only)
//	-remote base URL of a running server to pull public variables from (envgen only)
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var jsonConfigPath string
	var appVersion, logLevel string
	var envDir, envMode, publicPrefix, privatePrefix string
	var groupTablePath string
	var outputDir, privatePackage, publicPackage string
	var watch bool
	var remoteURL string

	fs.Var(&serverAddress, "a", "Net address host:port (server only)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m) (server only)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&envDir, "env-dir", "", "Directory with .env files")
	fs.StringVar(&envMode, "mode", "", "Env mode, selects .env.<mode> files")
	fs.StringVar(&publicPrefix, "public-prefix", "", "Public variable prefix")
	fs.StringVar(&privatePrefix, "private-prefix", "", "Private variable prefix")
	fs.StringVar(&groupTablePath, "group-table", "", "YAML class group table, or \"default\" for the built-in one (server only)")
	fs.StringVar(&outputDir, "out", "", "Generated code output directory (envgen only)")
	fs.StringVar(&privatePackage, "private-package", "", "Static private package name (envgen only)")
	fs.StringVar(&publicPackage, "public-package", "", "Static public package name (envgen only)")
	fs.BoolVar(&watch, "watch", false, "Regenerate on .env file changes (envgen only)")
	fs.StringVar(&remoteURL, "remote", "", "Base URL of a running server to pull public variables from (envgen only)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  appVersion,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Env: Env{
			Dir:           envDir,
			Mode:          envMode,
			PublicPrefix:  publicPrefix,
			PrivatePrefix: privatePrefix,
		},
		ClassNames: ClassNames{
			GroupTablePath: groupTablePath,
		},
		Codegen: Codegen{
			OutputDir:      outputDir,
			PrivatePackage: privatePackage,
			PublicPackage:  publicPackage,
			Watch:          watch,
			RemoteURL:      remoteURL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Hosts other than "localhost" must
// be IP addresses.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
