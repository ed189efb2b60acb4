package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juggajay/siteproof-v2-sub000/internal/tools"
)

// NewDoctorCmd validates configuration and reports what the daemon would run
// with, without touching the network.
func NewDoctorCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate configuration and environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config OK. Providers: %d, models: %d\n", len(cfg.Providers), len(cfg.Models))
			fmt.Fprintf(out, "Transport: %s, metrics: %v, tool rounds: %d\n",
				cfg.Server.Transport, cfg.Server.MetricsEnabled, cfg.Analysis.MaxToolRounds)
			fmt.Fprintf(out, "Registered tools: %d\n", len(tools.NewRegistry().Schemas()))
			return nil
		},
	}
}
