package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are CLI defaults picked up from the environment. A .env in the
// working directory is loaded first so users can keep per-project defaults
// next to their scaffolds.
type Settings struct {
	DefaultChain string `env:"AGENTFORGE_DEFAULT_CHAIN" envDefault:"monad-testnet"`
	DefaultImage string `env:"AGENTFORGE_DEFAULT_IMAGE"`
	Verbose      bool   `env:"AGENTFORGE_VERBOSE"`
}

// LoadSettings parses settings from the environment. A missing .env file
// is not an error.
func LoadSettings() (*Settings, error) {
	_ = godotenv.Load()

	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("failed to parse environment settings: %w", err)
	}
	return &s, nil
}
