package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/juggajay/siteproof-v2-sub000/internal/config"
	"github.com/juggajay/siteproof-v2-sub000/internal/daemon"
	"github.com/juggajay/siteproof-v2-sub000/internal/logging"
	"github.com/juggajay/siteproof-v2-sub000/internal/version"
)

func main() {
	var cfgPath string

	root := &cobra.Command{
		Use:     "siteproofd",
		Short:   "SiteProof analysis daemon",
		Version: version.Full(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(cmd, cfgPath)
		},
	}
	root.Flags().StringVar(&cfgPath, "config", "", "Path to config file (default: configs/config.yaml)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDaemon(cmd *cobra.Command, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best-effort

	server, err := daemon.NewServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx)
}
