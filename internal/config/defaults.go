package config

// DefaultConfig returns a Config with sensible defaults: a local backend on
// port 8090, the home page excluded from tracking, and the offline
// knowledge-base advisor so the app works without any API key.
func DefaultConfig() *Config {
	return &Config{
		APIBase: "http://localhost:8090",
		Storage: StorageConfig{
			Path: ".cashlens/cashlens.db",
		},
		Tracking: TrackingConfig{
			Exclude: []string{"home"},
		},
		Chat: ChatConfig{
			MaxTurns:       50,
			HistoryLimit:   8,
			TimeoutSeconds: 30,
		},
		Server: ServerConfig{
			Port: 8090,
		},
		Advisor: AdvisorConfig{
			Kind:  AdvisorKnowledge,
			Model: "gpt-4o-mini",
		},
	}
}
