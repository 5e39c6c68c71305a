package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CINEVO_SERVER", "")
	t.Setenv("CINEVO_DATA_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != Default().ServerURL {
		t.Errorf("ServerURL = %q, want default %q", cfg.ServerURL, Default().ServerURL)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log defaults = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CINEVO_SERVER", "http://example.test:9000")
	t.Setenv("CINEVO_DATA_DIR", dir)
	t.Setenv("CINEVO_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "http://example.test:9000" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.DBPath() != filepath.Join(dir, "cinevo.db") {
		t.Errorf("DBPath = %q", cfg.DBPath())
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.loadFile(filepath.Join(dir, "config.yaml")); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestLoadFile_Overlay(t *testing.T) {
	dir := t.TempDir()
	content := "server_url: http://from-file:1234\nlog_format: json\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.loadFile(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if cfg.ServerURL != "http://from-file:1234" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}
