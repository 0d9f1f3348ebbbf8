package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/straight-to-the-comments/internal/core"
)

//go:embed defaults/comments.yaml
var defaultConfigYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Pace:   core.DefaultPace,
		DBPath: "~/.comments/results.db",
		SSH: SSHConfig{
			Address:              ":23235",
			IdleTimeout:          30 * time.Minute,
			ConnectionsPerMinute: 10,
			ConnectionBurst:      5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
