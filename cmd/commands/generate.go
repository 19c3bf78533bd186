package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith-cli/internal/cli"
	"github.com/sitesmith/sitesmith-cli/pkg/files"
	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		flags        configFlags
		outPath      string
		fromFavorite string
		saveFavorite bool
		keepDraft    bool
		copyCode     bool
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a website without opening the interface",
		Long: `Generate a single-page website from a description and print the HTML.

The page is produced by one request to the configured model. Set
GEMINI_API_KEY (or API_KEY) before running.`,
		Example: `  # Print a portfolio site to stdout
  sitesmith generate -n "Jane Doe" -d "Wedding photographer in Lisbon"

  # Restaurant site with chosen features, written to a file
  sitesmith generate -t Restaurant -n "Casa Nova" -d "Family trattoria" \
    -f "Hero Section" -f "Contact Form" --out site/index.html

  # Start from the second example preset
  sitesmith generate --example 2 --out index.html

  # Regenerate a saved favorite and keep the result as the draft
  sitesmith generate --from-favorite "Casa Nova" --draft`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := newContext(cmd)
			defer cc.Close()

			ctrl, err := cc.Controller(true)
			if err != nil {
				return err
			}
			ctrl.LoadFavorites()

			var cfg models.WebsiteConfig
			if fromFavorite != "" {
				fav, err := findFavorite(ctrl.State().Favorites, fromFavorite)
				if err != nil {
					return err
				}
				cfg = fav.Config()
			} else if cfg, err = flags.build(cmd); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			cli.PrintInfo("Generating website for %q with %s...", cfg.BusinessName, cc.Settings.AI.Model)
			if err := ctrl.Submit(ctx, cfg); err != nil {
				ctrl.TakePushed()
				return errors.New(ctrl.State().Err)
			}
			code := ctrl.State().Code

			if saveFavorite {
				ctrl.SaveFavorite()
			}
			if keepDraft {
				if _, err := ctrl.AutosaveDraft(); err != nil {
					return fmt.Errorf("failed to save draft: %w", err)
				}
				cli.PrintSuccess("Saved as draft; it will be offered on the next 'sitesmith' start")
			}
			if copyCode {
				if err := clipboard.WriteAll(code); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				cli.PrintSuccess("Code copied to clipboard!")
			}

			if outPath == "" {
				ctrl.TakePushed()
				fmt.Fprint(cmd.OutOrStdout(), code)
				return nil
			}
			if err := cli.ValidateExportPath(outPath); err != nil {
				return err
			}
			if err := files.WriteFile(outPath, code); err != nil {
				return err
			}
			reportToasts(ctrl)
			cli.PrintSuccess("Website written to %s (%s)", outPath, cli.FormatBytes(int64(len(code))))
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&outPath, "out", "", "Write the HTML to this file instead of stdout")
	cmd.Flags().StringVar(&fromFavorite, "from-favorite", "", "Use a saved favorite (id, id prefix or business name)")
	cmd.Flags().BoolVar(&saveFavorite, "favorite", false, "Also save the configuration to favorites")
	cmd.Flags().BoolVar(&keepDraft, "draft", false, "Keep the result as the auto-saved draft")
	cmd.Flags().BoolVar(&copyCode, "copy", false, "Copy the HTML to the clipboard")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "Give up on the model after this long")

	return cmd
}
