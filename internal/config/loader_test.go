package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := emptyConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	cfg.fillDefaults()

	def := Default()
	if cfg.Pace != def.Pace {
		t.Errorf("pace = %v, want %v", cfg.Pace, def.Pace)
	}
	if cfg.DBPath != def.DBPath {
		t.Errorf("db_path = %q, want %q", cfg.DBPath, def.DBPath)
	}
	if cfg.SSH != def.SSH {
		t.Errorf("ssh = %+v, want %+v", cfg.SSH, def.SSH)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	data := "pace: 250ms\ndb_path: /tmp/results.db\nssh:\n  address: \":2222\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Pace != 250*time.Millisecond {
		t.Errorf("pace = %v, want 250ms", cfg.Pace)
	}
	if cfg.DBPath != "/tmp/results.db" {
		t.Errorf("db_path = %q", cfg.DBPath)
	}
	if cfg.SSH.Address != ":2222" {
		t.Errorf("ssh.address = %q", cfg.SSH.Address)
	}
	// Unset fields fall back to defaults
	if cfg.SSH.IdleTimeout != 30*time.Minute {
		t.Errorf("ssh.idle_timeout = %v, want default 30m", cfg.SSH.IdleTimeout)
	}
	if cfg.SSH.ConnectionsPerMinute != 10 || cfg.SSH.ConnectionBurst != 5 {
		t.Errorf("connection limits = %v/%d, want defaults 10/5",
			cfg.SSH.ConnectionsPerMinute, cfg.SSH.ConnectionBurst)
	}
	if cfg.SSH.MetricsAddress != "" {
		t.Errorf("metrics_address = %q, want disabled", cfg.SSH.MetricsAddress)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Load(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pace: [nope"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	pace := 100 * time.Millisecond
	cfg := Default()
	cfg.Apply(Overrides{
		Pace:           &pace,
		SSHAddress:     ":9999",
		MetricsAddress: ":9102",
	})

	if cfg.Pace != 100*time.Millisecond {
		t.Errorf("pace = %v", cfg.Pace)
	}
	if cfg.SSH.Address != ":9999" {
		t.Errorf("ssh.address = %q", cfg.SSH.Address)
	}
	if cfg.SSH.MetricsAddress != ":9102" {
		t.Errorf("ssh.metrics_address = %q", cfg.SSH.MetricsAddress)
	}
	if cfg.DBPath != Default().DBPath {
		t.Error("unset override changed db_path")
	}
}

func TestApplyZeroPace(t *testing.T) {
	zero := time.Duration(0)
	cfg := Default()
	cfg.Apply(Overrides{Pace: &zero})
	if cfg.Pace != 0 {
		t.Errorf("pace = %v, want 0 after explicit override", cfg.Pace)
	}

	cfg = Default()
	cfg.Apply(Overrides{})
	if cfg.Pace != Default().Pace {
		t.Errorf("pace = %v, want default when flag is not set", cfg.Pace)
	}
}

func TestLoadPace(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected time.Duration
	}{
		{"explicit zero", "pace: 0s\n", 0},
		{"missing", "db_path: /tmp/results.db\n", Default().Pace},
		{"negative", "pace: -1s\n", Default().Pace},
		{"set", "pace: 2s\n", 2 * time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pace.yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.Pace != tc.expected {
				t.Errorf("pace = %v, want %v", cfg.Pace, tc.expected)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.comments/results.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".comments", "results.db") {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
