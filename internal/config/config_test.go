package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ALUGUEI_API_URL", "")
	t.Setenv("ALUGUEI_VIACEP_URL", "")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.ViaCEPURL != defaultViaCEPURL {
		t.Errorf("ViaCEPURL = %q, want default", cfg.ViaCEPURL)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("ALUGUEI_API_URL", "")
	t.Setenv("ALUGUEI_VIACEP_URL", "")

	dir := t.TempDir()
	file := "api_base_url: https://api.aluguei.app/api/v1\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(file), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIBaseURL != "https://api.aluguei.app/api/v1" {
		t.Errorf("APIBaseURL = %q, want file value", cfg.APIBaseURL)
	}
	// Unset keys keep their defaults.
	if cfg.ViaCEPURL != defaultViaCEPURL {
		t.Errorf("ViaCEPURL = %q, want default", cfg.ViaCEPURL)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	file := "api_base_url: https://file.example/api/v1\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(file), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ALUGUEI_API_URL", "https://env.example/api/v1")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIBaseURL != "https://env.example/api/v1" {
		t.Errorf("APIBaseURL = %q, want env value", cfg.APIBaseURL)
	}
}

func TestLoadMalformedFileIsError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api_base_url: [broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed config.yaml")
	}
}
