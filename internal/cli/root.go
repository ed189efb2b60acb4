// Package cli implements the siteproof client command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juggajay/siteproof-v2-sub000/internal/config"
	"github.com/juggajay/siteproof-v2-sub000/internal/version"
)

// Options holds flags shared across subcommands.
type Options struct {
	ConfigPath string
}

// NewRootCmd constructs the siteproof command tree.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:           "siteproof",
		Short:         "Construction analysis client for the SiteProof daemon",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to config file (default: configs/config.yaml)")

	root.AddCommand(
		NewQueryCmd(opts),
		NewAnalyzeCmd(opts),
		NewDoctorCmd(opts),
		NewVersionCmd(),
	)
	return root
}

// Execute runs the root command, printing errors to stderr.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
