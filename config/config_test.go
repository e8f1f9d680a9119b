package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "8090" {
		t.Errorf("Expected default port 8090, got %s", cfg.Server.Port)
	}
	if cfg.Engine.Codec != "pattern" {
		t.Errorf("Expected default codec pattern, got %s", cfg.Engine.Codec)
	}
	if cfg.Engine.MaxScale != 8 {
		t.Errorf("Expected default max scale 8, got %d", cfg.Engine.MaxScale)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Log.Level)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LABEL_CODEC", "image")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("LABEL_MAX_SCALE", "4")

	cfg := Load()

	if cfg.Server.Port != "9999" {
		t.Errorf("Expected port override, got %s", cfg.Server.Port)
	}
	if cfg.Engine.Codec != "image" {
		t.Errorf("Expected codec override, got %s", cfg.Engine.Codec)
	}
	if !cfg.Log.Pretty {
		t.Error("Expected pretty logging enabled")
	}
	if cfg.Engine.MaxScale != 4 {
		t.Errorf("Expected max scale override, got %d", cfg.Engine.MaxScale)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("LABEL_MAX_SCALE", "not-a-number")

	cfg := Load()
	if cfg.Engine.MaxScale != 8 {
		t.Errorf("Expected fallback to default, got %d", cfg.Engine.MaxScale)
	}
}
