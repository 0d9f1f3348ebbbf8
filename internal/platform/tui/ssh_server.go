package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/straight-to-the-comments/internal/core"
	"github.com/vovakirdan/straight-to-the-comments/internal/dialogue"
	"github.com/vovakirdan/straight-to-the-comments/internal/metrics"
	"github.com/vovakirdan/straight-to-the-comments/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.comments/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Pace is the delay between a pick and the next round.
	Pace time.Duration

	// ConnectionsPerMinute and ConnectionBurst limit new connections per
	// remote host.
	ConnectionsPerMinute float64
	ConnectionBurst      int

	// MetricsAddress serves Prometheus metrics when set.
	MetricsAddress string
}

// SSHServer wraps a Wish SSH server that hosts one session per connection.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	dialogue dialogue.Table
	logger   *log.Logger
	limiter  *connLimiter
	metrics  *metrics.Registry
	exporter *metrics.Server
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, table dialogue.Table, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "comments-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		dialogue: table,
		logger:   logger,
		limiter:  newConnLimiter(cfg.ConnectionsPerMinute, cfg.ConnectionBurst),
		metrics:  metrics.NewRegistry(),
	}
	if cfg.MetricsAddress != "" {
		srv.exporter = metrics.NewServer(cfg.MetricsAddress, srv.metrics)
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		srv.closeStore()
		return nil, err
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
			srv.rateLimitMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath picks the host key location and makes sure its
// directory exists.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".comments", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates an independent session model for each connection.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.DefaultConfig()
	cfg.Seed = time.Now().UnixNano()
	cfg.Pace = s.config.Pace
	if pty.Window.Width > 0 && pty.Window.Height > 0 {
		cfg.ScreenW = pty.Window.Width
		cfg.ScreenH = pty.Window.Height
	}

	logger := s.logger.With("user", sshSession.User())
	model := NewModel(s.dialogue, s.store, cfg, sshSession.User(), logger).
		WithObserver(s.metrics)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.metrics.ActiveConnections.Inc()
		defer s.metrics.ActiveConnections.Dec()
		s.logger.Info("connection opened",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("connection closed",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// rateLimitMiddleware refuses hosts that open connections too quickly.
// Middlewares run last to first, so this is checked before anything else.
func (s *SSHServer) rateLimitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		host := remoteHost(sshSession.RemoteAddr())
		if !s.limiter.allow(host) {
			s.metrics.RejectedConnections.Inc()
			s.logger.Warn("connection rate limited", "user", sshSession.User(), "remote", host)
			wish.Fatalln(sshSession, "Too many connections. Try again in a minute.")
			return
		}
		next(sshSession)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 2)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	if s.exporter != nil {
		s.logger.Info("serving metrics", "address", s.config.MetricsAddress)
		go func() {
			if err := s.exporter.ListenAndServe(); err != nil {
				errCh <- fmt.Errorf("metrics: %w", err)
			}
		}()
	}

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		_ = s.Shutdown()
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.exporter != nil {
		if exErr := s.exporter.Shutdown(ctx); exErr != nil && err == nil {
			err = exErr
		}
	}
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("could not close results database", "error", err)
	}
	s.store = nil
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
