package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith-cli/internal/cli"
	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

// ExampleItem is one preset in structured output
type ExampleItem struct {
	Number      int      `json:"number" yaml:"number"`
	WebsiteType string   `json:"website_type" yaml:"website_type"`
	Tone        string   `json:"tone" yaml:"tone"`
	Style       string   `json:"style" yaml:"style"`
	Features    []string `json:"features" yaml:"features"`
}

// NewExamplesCommand lists the example presets and the option catalogue
func NewExamplesCommand() *cobra.Command {
	var showOptions bool

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List example presets",
		Long: `List the example presets accepted by --example, and with --options the
website types, tones, features and styles that can be chosen.`,
		Example: `  sitesmith examples
  sitesmith examples --options
  sitesmith generate --example 3 -n "Rocketly"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			items := make([]ExampleItem, len(models.ExampleConfigs))
			for i, ex := range models.ExampleConfigs {
				items[i] = ExampleItem{
					Number:      i + 1,
					WebsiteType: ex.WebsiteType,
					Tone:        ex.Tone,
					Style:       ex.Style,
					Features:    ex.Features,
				}
			}
			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, items)
			}

			w := cmd.OutOrStdout()
			table := cli.NewTableFormatter(w)
			table.Header("#", "TYPE", "TONE", "STYLE", "FEATURES")
			for _, item := range items {
				table.Row(fmt.Sprintf("%d", item.Number), item.WebsiteType, item.Tone, item.Style, strings.Join(item.Features, ", "))
			}
			table.Flush()

			if showOptions {
				fmt.Fprintf(w, "\nWebsite types: %s\n", strings.Join(models.WebsiteTypes, ", "))
				fmt.Fprintf(w, "Tones:         %s\n", strings.Join(models.Tones, ", "))
				fmt.Fprintf(w, "Features:      %s\n", strings.Join(models.Features, ", "))
				fmt.Fprintf(w, "Styles:        %s\n", strings.Join(models.Styles, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showOptions, "options", false, "Also list every selectable option")
	return cmd
}
