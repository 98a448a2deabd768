package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/omega-arcade/internal/games/omega"
	"github.com/vovakirdan/omega-arcade/internal/logging"
	"github.com/vovakirdan/omega-arcade/internal/platform/tui"
	"github.com/vovakirdan/omega-arcade/internal/platform/web"
	"github.com/vovakirdan/omega-arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Omega SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game; runs are stored under the SSH user
name and all users share the same leaderboard. With --http the leaderboard
is also served as JSON.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.omega/host_key

Examples:
  omega serve                           # Listen on :23234 with auto-generated key
  omega serve --ssh :2222               # Listen on port 2222
  omega serve --http :8080              # Also serve /api/v1 on port 8080
  omega serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (disabled when empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := logging.New(os.Stderr, "omega", flagLogLevel)

	gameCfg, err := loadGameConfig()
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "error", err)
	}
	defer store.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.GameID = omega.GameID
	cfg.TickRate = flagFPS
	cfg.HoldWindow = gameCfg.Input.HoldWindow()
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	sshServer, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("omega-ssh"))
	if err != nil {
		logger.Fatal("cannot create SSH server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting Omega SSH server on %s\n", sshServer.Addr())
	fmt.Println("Press Ctrl+C to stop")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sshServer.ListenAndServe(ctx)
	})
	if flagHTTPAddr != "" {
		api := web.NewServer(store, logger.WithPrefix("omega-http"))
		g.Go(func() error {
			return api.ListenAndServe(ctx, flagHTTPAddr)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
