package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wexinc/humane/internal/backup"
	"github.com/wexinc/humane/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration humane would run with: the defaults merged
with the file given by --config. An empty fallback directory is shown
resolved to the directory it stands for.

Examples:
  humane config                        # Defaults
  humane config --config humane.yaml   # Defaults merged with a file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cfg.Backup.FallbackDir == "" {
				cfg.Backup.FallbackDir = backup.ExecutableParentDir()
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
