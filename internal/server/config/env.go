package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays DIALKEEPER_* variables onto config. Unset variables
// leave the current value in place.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
