package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Errorf("expected development env by default, got %s", cfg.Env)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if cfg.CatalogFile != "" || cfg.TemplateFile != "" {
		t.Errorf("expected built-in catalog and template, got %q %q", cfg.CatalogFile, cfg.TemplateFile)
	}
	if cfg.ThemeFile != "" || cfg.ThemeVariant != "" {
		t.Errorf("expected no theme by default, got %q %q", cfg.ThemeFile, cfg.ThemeVariant)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("CATALOG_FILE", "/etc/notegen/catalog.yaml")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("THEME_FILE", "/etc/notegen/theme.yaml")
	t.Setenv("THEME_VARIANT", "night")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != ":9000" {
		t.Errorf("expected :9000, got %s", cfg.Addr())
	}
	if cfg.IsDev() {
		t.Errorf("expected production env")
	}
	if cfg.CatalogFile != "/etc/notegen/catalog.yaml" {
		t.Errorf("unexpected catalog file %s", cfg.CatalogFile)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.ThemeFile != "/etc/notegen/theme.yaml" || cfg.ThemeVariant != "night" {
		t.Errorf("unexpected theme settings %q %q", cfg.ThemeFile, cfg.ThemeVariant)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=debug\nTEMPLATE_FILE=note.hbs\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.TemplateFile != "note.hbs" {
		t.Errorf("expected values from .env, got %+v", cfg)
	}
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "0s")
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for zero shutdown timeout")
	}
}
