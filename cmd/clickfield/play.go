package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/clickfield/internal/config"
	"github.com/vovakirdan/clickfield/internal/platform/tui"
	"github.com/vovakirdan/clickfield/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the field in this terminal",
	Long: `Open the field in this terminal. Your terminal must report mouse clicks.

Controls:
  Left click   - Spawn a shape, or remove the shape under the cursor
  C            - Clear the field
  Ctrl+S       - Save a screenshot to ~/.clickfield/screenshots
  Q/Ctrl+C     - Quit

Log output goes to the file named in the config (log.file), since the
field owns the terminal while it runs.

Examples:
  clickfield play
  clickfield play --seed 42
  clickfield play --config ./my-clickfield.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closeLog()

	// Get terminal size; the field keeps it for the whole session
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open session storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the field still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Seed:   flagSeed,
		Width:  width,
		Height: height,
		User:   currentUser(),
	})
}

// openLogger creates a file logger for the TUI. On failure it returns a
// nil logger, which the model treats as discard.
func openLogger(lc config.LogConfig) (*log.Logger, func(), error) {
	noop := func() {}
	if lc.File == "" {
		return nil, noop, nil
	}

	path, err := config.ExpandHome(lc.File)
	if err != nil {
		return nil, noop, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "clickfield",
	})
	if level, lvlErr := log.ParseLevel(lc.Level); lvlErr == nil {
		logger.SetLevel(level)
	}
	return logger, func() { f.Close() }, nil
}

// currentUser returns the local username, or "local" if it is unknown.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
