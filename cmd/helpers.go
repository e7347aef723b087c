package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/domuslabs/cashlens/internal/advisor"
	"github.com/domuslabs/cashlens/internal/config"
	"github.com/domuslabs/cashlens/internal/db"
	"github.com/domuslabs/cashlens/internal/knowledge"
	"github.com/domuslabs/cashlens/internal/store"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cashlens init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens the profile database and wraps it as a key-value store.
func openStore(cfg *config.Config) (*db.DB, store.Store, error) {
	database, err := db.Open(cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening profile database: %w", err)
	}
	return database, store.NewSQLite(database), nil
}

// chatTimeout converts the configured timeout to a duration, leaving zero
// to the client's own default.
func chatTimeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// buildAdvisor creates the reply generator selected by the config. The
// knowledge advisor runs fully local; openai requires OPENAI_API_KEY.
func buildAdvisor(ctx context.Context, cfg *config.Config, database *db.DB) (advisor.Provider, error) {
	switch cfg.Advisor.Kind {
	case config.AdvisorOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for the openai advisor")
		}
		return advisor.NewOpenAIProvider(apiKey, cfg.Advisor.Model), nil
	case config.AdvisorStatic:
		return advisor.Static{Response: "Thanks for your question! The assistant is running in offline demo mode."}, nil
	case config.AdvisorKnowledge, "":
		base, err := knowledge.New(ctx, database, nil)
		if err != nil {
			return nil, fmt.Errorf("building knowledge base: %w", err)
		}
		return advisor.NewKnowledgeProvider(base), nil
	default:
		return nil, fmt.Errorf("unknown advisor kind %q", cfg.Advisor.Kind)
	}
}
