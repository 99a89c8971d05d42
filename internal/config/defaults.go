package config

import appenv "github.com/MKhiriev/go-appenv/env"

// Defaults for fields left empty by every source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultEnvDir         = "."
	DefaultEnvMode        = "development"
	DefaultOutputDir      = "internal/appenv"
	DefaultPrivatePackage = "envprivate"
	DefaultPublicPackage  = "envpublic"
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Env.Dir, DefaultEnvDir)
	setDefault(&cfg.Env.Mode, DefaultEnvMode)
	setDefault(&cfg.Env.PublicPrefix, appenv.DefaultPublicPrefix)
	setDefault(&cfg.Codegen.OutputDir, DefaultOutputDir)
	setDefault(&cfg.Codegen.PrivatePackage, DefaultPrivatePackage)
	setDefault(&cfg.Codegen.PublicPackage, DefaultPublicPackage)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
