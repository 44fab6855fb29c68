package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ballpark/internal/engine"
	"github.com/vovakirdan/tui-ballpark/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagMetricsAddr string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ballpark SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game; players never share state.
Finished games are stored per-server (all players share the leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ballpark/host_key

Examples:
  ballpark serve                           # Listen on :23234 with auto-generated key
  ballpark serve --ssh :2222               # Listen on port 2222
  ballpark serve --metrics :9090           # Also expose Prometheus metrics
  ballpark serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Serve Prometheus metrics on this address (disabled if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	// The server logs connections at info, so it never goes quieter than that
	if !rootCmd.PersistentFlags().Changed("log-level") {
		flagLogLevel = "info"
	}
	logger, release, err := newLogger("ballpark-ssh")
	if err != nil {
		fail("%v", err)
	}
	defer release()

	deps, err := loadGameDeps(logger, true)
	if err != nil {
		fail("%v", err)
	}
	defer deps.Close()

	cfg := tui.SSHServerConfig{
		Address:        flagSSHAddr,
		HostKeyPath:    flagHostKey,
		MetricsAddress: flagMetricsAddr,
		IdleTimeout:    time.Duration(flagIdleTimeout) * time.Minute,
	}

	// Each connection draws its own seed unless --seed pins every game
	newGame := func(l *log.Logger) (*engine.Session, error) {
		return deps.newSession(flagSeed, l)
	}

	server, err := tui.NewSSHServer(cfg, newGame, logger)
	if err != nil {
		deps.Close()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting ballpark SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		deps.Close()
		fail("server: %v", err)
	}
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
