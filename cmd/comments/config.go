package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/straight-to-the-comments/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file search and flag overrides,
as YAML. With --default, print the built-in config file instead; it is a
good starting point for ~/.comments/config.yaml.

Examples:
  comments config
  comments config --pace 0 --db ./results.db
  comments config --default > ~/.comments/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			exitErr("%v", err)
		}
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		exitErr("encoding config: %v", err)
	}
	if err := enc.Close(); err != nil {
		exitErr("%v", err)
	}
}
