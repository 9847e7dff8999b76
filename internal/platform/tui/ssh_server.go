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
	"github.com/hashicorp/mdns"

	"github.com/vovakirdan/clickfield/internal/config"
	"github.com/vovakirdan/clickfield/internal/storage"
)

// finishKey stores the Finish func of a session's model in the SSH context.
type finishKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// App is the configuration every session's field is built from.
	App config.Config

	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.clickfield/host_key.
	HostKeyPath string

	// DBPath is the path to the session statistics database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Seed seeds every session's generator; 0 uses the current time.
	Seed int64

	// Announce advertises the server on the local network via mDNS.
	Announce bool
}

// DefaultSSHServerConfig returns a config built from the given settings.
func DefaultSSHServerConfig(cfg config.Config) SSHServerConfig {
	return SSHServerConfig{
		App:         cfg,
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKeyPath,
		DBPath:      cfg.Storage.Path,
		IdleTimeout: cfg.SSH.IdleTimeout,
		Announce:    cfg.SSH.Announce,
	}
}

// SSHServer wraps a Wish SSH server. Every connection gets its own field.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	mdns   *mdns.Server
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "clickfield-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = "~/.clickfield/host_key"
	}
	hostKeyPath, err = config.ExpandHome(hostKeyPath)
	if err != nil {
		return nil, err
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a field model for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model, err := NewModel(Options{
		Config: s.config.App,
		Store:  s.store,
		Logger: s.logger.With("user", sshSession.User()),
		Seed:   s.config.Seed,
		Width:  pty.Window.Width,
		Height: pty.Window.Height,
		User:   sshSession.User(),
	})
	if err != nil {
		s.logger.Error("cannot create field", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	// Statistics are saved even when the client just drops the connection
	sshSession.Context().SetValue(finishKey{}, model.Finish)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events and saves session statistics
// once the program has exited.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		if finish, ok := sshSession.Context().Value(finishKey{}).(func()); ok {
			finish()
		}
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	if s.config.Announce {
		server, err := announce(s.config.Address)
		if err != nil {
			s.logger.Warn("mDNS announcement disabled", "error", err)
		} else {
			s.mdns = server
			s.logger.Info("announcing via mDNS", "service", ServiceType)
		}
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.mdns != nil {
		s.mdns.Shutdown()
	}

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
