package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juggajay/siteproof-v2-sub000/internal/version"
)

// NewVersionCmd prints the binary's version and build metadata.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build details",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
