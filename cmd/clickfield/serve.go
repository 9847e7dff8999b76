package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clickfield/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagAnnounce    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the clickfield SSH server",
	Long: `Start an SSH server that gives every connection its own field.

Session statistics of all users are stored in the same database.

Host key handling:
  - If --host-key (or ssh.host_key in the config) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.clickfield/host_key

Examples:
  clickfield serve                           # Listen on :23235 with auto-generated key
  clickfield serve --ssh :2222               # Listen on port 2222
  clickfield serve --host-key ./my_host_key  # Use specific host key
  clickfield serve --db ./sessions.db        # Use specific database
  clickfield serve --announce                # Discoverable as _clickfield._tcp

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().BoolVar(&flagAnnounce, "announce", false, "Advertise the server on the local network via mDNS")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srvCfg := tui.DefaultSSHServerConfig(cfg)
	srvCfg.Seed = flagSeed
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagAnnounce {
		srvCfg.Announce = true
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting clickfield SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
