// Package config resolves the client configuration: an optional
// config.yaml in the state directory, overridden by environment
// variables, falling back to built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	apiURLEnvName    = "ALUGUEI_API_URL"
	viaCEPURLEnvName = "ALUGUEI_VIACEP_URL"

	defaultAPIBaseURL = "http://localhost:8080/api/v1"
	defaultViaCEPURL  = "https://viacep.com.br"

	configFileName = "config.yaml"
)

// Config are the remote endpoints the client talks to.
type Config struct {
	APIBaseURL string `yaml:"api_base_url"`
	ViaCEPURL  string `yaml:"viacep_url"`
}

// Load reads config.yaml from dir when present and applies env overrides.
// Precedence: env > file > default. A missing file is fine; a malformed
// one is an error so a typo never silently points at the wrong backend.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		APIBaseURL: defaultAPIBaseURL,
		ViaCEPURL:  defaultViaCEPURL,
	}

	path := filepath.Join(dir, configFileName)
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults apply
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		var file Config
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if file.APIBaseURL != "" {
			cfg.APIBaseURL = file.APIBaseURL
		}
		if file.ViaCEPURL != "" {
			cfg.ViaCEPURL = file.ViaCEPURL
		}
	}

	if v := os.Getenv(apiURLEnvName); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(viaCEPURLEnvName); v != "" {
		cfg.ViaCEPURL = v
	}
	return cfg, nil
}
