package config

// AdvisorKind identifies the reply generator used by the reference backend.
type AdvisorKind string

const (
	// AdvisorOpenAI answers with the OpenAI Chat Completions API.
	AdvisorOpenAI AdvisorKind = "openai"
	// AdvisorKnowledge answers locally from the built-in knowledge base.
	AdvisorKnowledge AdvisorKind = "knowledge"
	// AdvisorStatic returns a fixed canned reply (offline demo mode).
	AdvisorStatic AdvisorKind = "static"
)

// Config is the top-level cashlens configuration, corresponding to
// .cashlens.yml.
type Config struct {
	APIBase  string         `yaml:"api_base" koanf:"api_base"`
	Storage  StorageConfig  `yaml:"storage" koanf:"storage"`
	Tracking TrackingConfig `yaml:"tracking" koanf:"tracking"`
	Chat     ChatConfig     `yaml:"chat" koanf:"chat"`
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Advisor  AdvisorConfig  `yaml:"advisor" koanf:"advisor"`
}

// StorageConfig locates the local profile database.
type StorageConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// TrackingConfig tunes the behavior tracker.
type TrackingConfig struct {
	// Exclude lists glob patterns for pages left out of time-tracking and
	// top-page ranking. The landing page belongs here.
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// ChatConfig tunes the assistant widget.
type ChatConfig struct {
	MaxTurns       int `yaml:"max_turns" koanf:"max_turns"`
	HistoryLimit   int `yaml:"history_limit" koanf:"history_limit"`
	TimeoutSeconds int `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ServerConfig holds reference-backend settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_cors" koanf:"allow_all_cors"`
}

// AdvisorConfig selects and tunes the reply generator.
type AdvisorConfig struct {
	Kind  AdvisorKind `yaml:"kind" koanf:"kind"`
	Model string      `yaml:"model" koanf:"model"`
}
