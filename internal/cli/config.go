package cli

import "github.com/caarlos0/env/v11"

// Config holds CLI configuration. Values come from the environment and can be
// overridden per-invocation with flags.
type Config struct {
	// GameAPI is the base URL of the game service
	GameAPI string `env:"PHISHDRILL_GAME_API" envDefault:"http://localhost:8080/api/game"`

	// UserAPI is the base URL of the user service
	UserAPI string `env:"PHISHDRILL_USER_API" envDefault:"http://localhost:8080/api/user"`

	// Output is the output format for non-interactive commands: text or json
	Output string `env:"PHISHDRILL_OUTPUT" envDefault:"text"`
}

// LoadConfig reads configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
