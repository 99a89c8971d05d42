package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Env struct {
		Dir           string `json:"dir"`
		Mode          string `json:"mode"`
		PublicPrefix  string `json:"public_prefix"`
		PrivatePrefix string `json:"private_prefix"`
	} `json:"env,omitempty"`

	ClassNames struct {
		GroupTablePath string `json:"group_table"`
	} `json:"class_names,omitempty"`

	Codegen struct {
		OutputDir      string `json:"output_dir"`
		PrivatePackage string `json:"private_package"`
		PublicPackage  string `json:"public_package"`
		Watch          bool   `json:"watch"`
		RemoteURL      string `json:"remote_url"`
	} `json:"codegen,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Env: Env{
			Dir:           jsonCfg.Env.Dir,
			Mode:          jsonCfg.Env.Mode,
			PublicPrefix:  jsonCfg.Env.PublicPrefix,
			PrivatePrefix: jsonCfg.Env.PrivatePrefix,
		},
		ClassNames: ClassNames{
			GroupTablePath: jsonCfg.ClassNames.GroupTablePath,
		},
		Codegen: Codegen{
			OutputDir:      jsonCfg.Codegen.OutputDir,
			PrivatePackage: jsonCfg.Codegen.PrivatePackage,
			PublicPackage:  jsonCfg.Codegen.PublicPackage,
			Watch:          jsonCfg.Codegen.Watch,
			RemoteURL:      jsonCfg.Codegen.RemoteURL,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
