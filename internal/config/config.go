// Package config provides YAML-based configuration loading for the game and
// its SSH server.
package config

import "time"

// Config is the top-level application configuration.
type Config struct {
	Pace         time.Duration `yaml:"pace"`
	DBPath       string        `yaml:"db_path"`
	DialoguePath string        `yaml:"dialogue_path"`
	SSH          SSHConfig     `yaml:"ssh"`
}

// SSHConfig defines the listener for remote play.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // auto-generated under ~/.comments when empty
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// New connections allowed per remote host, refilled per minute.
	ConnectionsPerMinute float64 `yaml:"connections_per_minute"`
	ConnectionBurst      int     `yaml:"connection_burst"`

	// MetricsAddress serves Prometheus metrics when set (e.g. ":9102").
	MetricsAddress string `yaml:"metrics_address"`
}

// Overrides holds values set explicitly on the command line. Zero values
// leave the loaded configuration untouched.
type Overrides struct {
	Pace           *time.Duration // nil when --pace was not given; 0 advances instantly
	DBPath         string
	DialoguePath   string
	SSHAddress     string
	HostKeyPath    string
	IdleTimeout    time.Duration
	MetricsAddress string
}

// Apply merges command line overrides into the configuration.
func (c *Config) Apply(o Overrides) {
	if o.Pace != nil && *o.Pace >= 0 {
		c.Pace = *o.Pace
	}
	if o.DBPath != "" {
		c.DBPath = o.DBPath
	}
	if o.DialoguePath != "" {
		c.DialoguePath = o.DialoguePath
	}
	if o.SSHAddress != "" {
		c.SSH.Address = o.SSHAddress
	}
	if o.HostKeyPath != "" {
		c.SSH.HostKeyPath = o.HostKeyPath
	}
	if o.IdleTimeout > 0 {
		c.SSH.IdleTimeout = o.IdleTimeout
	}
	if o.MetricsAddress != "" {
		c.SSH.MetricsAddress = o.MetricsAddress
	}
}

// fillDefaults replaces unset fields with defaults, so partial config files
// only need to name what they change. An explicit pace of 0s is kept.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Pace < 0 {
		c.Pace = def.Pace
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.IdleTimeout <= 0 {
		c.SSH.IdleTimeout = def.SSH.IdleTimeout
	}
	if c.SSH.ConnectionsPerMinute <= 0 {
		c.SSH.ConnectionsPerMinute = def.SSH.ConnectionsPerMinute
	}
	if c.SSH.ConnectionBurst <= 0 {
		c.SSH.ConnectionBurst = def.SSH.ConnectionBurst
	}
}
