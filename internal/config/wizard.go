package config

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to cashlens! Let's configure your workspace.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend base URL.
	basePrompt := promptui.Prompt{
		Label:   "Backend base URL",
		Default: cfg.APIBase,
	}
	apiBase, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("api base: %w", err)
	}
	cfg.APIBase = apiBase

	// 2. Assistant mode.
	advisorPrompt := promptui.Select{
		Label: "Select assistant mode",
		Items: []string{
			"knowledge — answer locally from the built-in knowledge base",
			"openai    — answer with the OpenAI API (needs OPENAI_API_KEY)",
			"static    — canned replies (offline demo)",
		},
	}
	advisorIdx, _, err := advisorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("advisor selection: %w", err)
	}
	kinds := []AdvisorKind{AdvisorKnowledge, AdvisorOpenAI, AdvisorStatic}
	cfg.Advisor.Kind = kinds[advisorIdx]

	// 3. Storage location.
	storagePrompt := promptui.Prompt{
		Label:   "Profile database path",
		Default: cfg.Storage.Path,
	}
	storagePath, err := storagePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("storage path: %w", err)
	}
	cfg.Storage.Path = storagePath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
