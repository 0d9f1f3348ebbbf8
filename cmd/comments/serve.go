package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/straight-to-the-comments/internal/config"
	"github.com/vovakirdan/straight-to-the-comments/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeDebug  bool
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent session. Finished sessions
are stored per-server (all users share the same results history).
New connections are rate limited per remote host.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.comments/host_key

Examples:
  comments serve                           # Listen on :23235 with auto-generated key
  comments serve --ssh :2222               # Listen on port 2222
  comments serve --host-key ./my_host_key  # Use specific host key
  comments serve --db ./results.db         # Use specific database
  comments serve --metrics :9102           # Expose Prometheus metrics and /health

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23235)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config, 30m)")
	serveCmd.Flags().BoolVar(&flagServeDebug, "debug", false, "Log every round resolution")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Serve Prometheus metrics on this address (e.g. :9102)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}
	cfg.Apply(config.Overrides{
		SSHAddress:     flagSSHAddr,
		HostKeyPath:    flagHostKey,
		IdleTimeout:    flagIdleTimeout,
		MetricsAddress: flagMetricsAddr,
	})

	table, err := loadDialogue(cfg)
	if err != nil {
		exitErr("%v", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "comments-ssh",
	})
	if flagServeDebug {
		logger.SetLevel(log.DebugLevel)
	}

	hostKey, err := config.ExpandHome(cfg.SSH.HostKeyPath)
	if err != nil {
		exitErr("%v", err)
	}

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: hostKey,
		DBPath:      cfg.DBPath,
		IdleTimeout: cfg.SSH.IdleTimeout,
		Pace:        cfg.Pace,

		ConnectionsPerMinute: cfg.SSH.ConnectionsPerMinute,
		ConnectionBurst:      cfg.SSH.ConnectionBurst,
		MetricsAddress:       cfg.SSH.MetricsAddress,
	}

	server, err := tui.NewSSHServer(srvCfg, table, logger)
	if err != nil {
		exitErr("creating server: %v", err)
	}

	fmt.Printf("Starting comments SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitErr("server: %v", err)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
