package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBase != "http://localhost:8090" {
		t.Errorf("api_base = %q", cfg.APIBase)
	}
	if cfg.Chat.MaxTurns != 50 {
		t.Errorf("chat.max_turns = %d", cfg.Chat.MaxTurns)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cashlens.yml")
	data := []byte("api_base: http://example.com:9999\nchat:\n  max_turns: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBase != "http://example.com:9999" {
		t.Errorf("api_base = %q", cfg.APIBase)
	}
	if cfg.Chat.MaxTurns != 10 {
		t.Errorf("chat.max_turns = %d", cfg.Chat.MaxTurns)
	}
	// Untouched fields keep their defaults.
	if cfg.Server.Port != 8090 {
		t.Errorf("server.port = %d", cfg.Server.Port)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cashlens.yml")

	cfg := DefaultConfig()
	cfg.Advisor.Kind = AdvisorStatic
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Advisor.Kind != AdvisorStatic {
		t.Errorf("advisor.kind = %q", back.Advisor.Kind)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty api_base", func(c *Config) { c.APIBase = "" }},
		{"zero max_turns", func(c *Config) { c.Chat.MaxTurns = 0 }},
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"unknown advisor", func(c *Config) { c.Advisor.Kind = "psychic" }},
		{"bad exclude pattern", func(c *Config) { c.Tracking.Exclude = []string{"[unclosed"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
