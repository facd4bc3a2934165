package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/humane/internal/version"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for humane.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  humane version          # Show detailed version info
  humane version --json   # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.NewInfo(Version, Commit, Date)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")
	return cmd
}
