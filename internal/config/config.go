// Package config loads engine tuning knobs from the environment. Unknown
// env vars are ignored, satisfying the port's "unknown options are ignored"
// rule for free — the struct only ever reads the keys it declares.
package config

import "github.com/caarlos0/env/v11"

// Config holds the recognized options from specification §6.
type Config struct {
	MaxHandSize int    `env:"TCG_MAX_HAND_SIZE" envDefault:"10"`
	MaxTurns    int    `env:"TCG_MAX_TURNS" envDefault:"30"`
	LogLevel    string `env:"TCG_LOG_LEVEL" envDefault:"info"`
	Seed        int64  `env:"TCG_SEED" envDefault:"0"`
}

// Load reads Config from the environment, applying defaults for anything
// unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns a Config populated purely with the §6 defaults, useful for
// tests that don't want to touch the environment.
func Default() Config {
	return Config{MaxHandSize: 10, MaxTurns: 30, LogLevel: "info"}
}
