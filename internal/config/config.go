package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CASHLENS_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: CASHLENS_API_BASE -> api_base,
	// CASHLENS_SERVER.PORT -> server.port, etc.
	if err := k.Load(env.Provider("CASHLENS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CASHLENS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validAdvisors is the set of recognized advisor values.
var validAdvisors = map[AdvisorKind]bool{
	AdvisorOpenAI:    true,
	AdvisorKnowledge: true,
	AdvisorStatic:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api_base is required")
	}
	if _, err := url.Parse(c.APIBase); err != nil {
		return fmt.Errorf("invalid api_base %q: %w", c.APIBase, err)
	}

	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}

	for _, pattern := range c.Tracking.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid tracking.exclude pattern %q", pattern)
		}
	}

	if c.Chat.MaxTurns <= 0 {
		return fmt.Errorf("chat.max_turns must be positive")
	}
	if c.Chat.HistoryLimit < 0 {
		return fmt.Errorf("chat.history_limit must be non-negative")
	}
	if c.Chat.TimeoutSeconds <= 0 {
		return fmt.Errorf("chat.timeout_seconds must be positive")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Advisor.Kind != "" && !validAdvisors[c.Advisor.Kind] {
		return fmt.Errorf("invalid advisor.kind %q: must be one of openai, knowledge, static", c.Advisor.Kind)
	}

	return nil
}
