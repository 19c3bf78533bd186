package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith-cli/internal/cli"
	"github.com/sitesmith/sitesmith-cli/pkg/files"
)

// NewConfigCommand shows the effective settings
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings (file, environment and defaults)",
		Long: `Print the settings sitesmith will use after layering settings.yaml,
SITESMITH_* environment variables and built-in defaults. The API key is
masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			settings, err := newContext(cmd).LoadSettings()
			if err != nil {
				return err
			}

			masked := *settings
			if masked.AI.APIKey != "" {
				masked.AI.APIKey = "****"
			}
			if masked.Storage.RedisPassword != "" {
				masked.Storage.RedisPassword = "****"
			}

			if format == string(cli.FormatText) {
				format = string(cli.FormatYAML)
				fmt.Fprintf(cmd.ErrOrStderr(), "# %s\n", files.SettingsPath())
			}
			return cli.OutputResults(cmd.OutOrStdout(), format, masked)
		},
	}

	cmd.AddCommand(show)
	return cmd
}
