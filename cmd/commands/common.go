package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith-cli/internal/cli"
	"github.com/sitesmith/sitesmith-cli/internal/logging"
	"github.com/sitesmith/sitesmith-cli/pkg/controller"
	"github.com/sitesmith/sitesmith-cli/pkg/models"
	"github.com/sitesmith/sitesmith-cli/pkg/toast"
)

// newContext builds the command context with a stderr logger honouring --verbose
func newContext(cmd *cobra.Command) *cli.CommandContext {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return cli.NewCommandContext(logging.New(os.Stderr, verbose))
}

func requireProject(cmd *cobra.Command, args []string) error {
	return newContext(cmd).ValidateProject()
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = string(cli.FormatText)
	}
	return format, cli.ValidateOutputFormat(format)
}

// reportToasts prints what the controller announced since the last call
func reportToasts(ctrl *controller.Controller) {
	for _, t := range ctrl.TakePushed() {
		switch t.Severity {
		case toast.Success:
			cli.PrintSuccess("%s", t.Text)
		case toast.Error:
			cli.PrintError("%s", t.Text)
		default:
			cli.PrintInfo("%s", t.Text)
		}
	}
}

// configFlags are the website description flags shared by generate, prompt
// and favorites save
type configFlags struct {
	websiteType string
	name        string
	description string
	tone        string
	features    []string
	style       string
	css         string
	example     int
}

func (f *configFlags) bind(cmd *cobra.Command) {
	defaults := models.DefaultConfig()
	cmd.Flags().StringVarP(&f.websiteType, "type", "t", defaults.WebsiteType, "Website type")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Business name")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Business description")
	cmd.Flags().StringVar(&f.tone, "tone", defaults.Tone, "Tone of voice")
	cmd.Flags().StringSliceVarP(&f.features, "feature", "f", defaults.Features, "Feature to include (repeatable)")
	cmd.Flags().StringVarP(&f.style, "style", "s", defaults.Style, "Visual style")
	cmd.Flags().StringVar(&f.css, "css", "", "Custom CSS (only used with --style Custom)")
	cmd.Flags().IntVar(&f.example, "example", 0, "Start from example preset N (see 'sitesmith examples')")
}

// build turns the flags into a config. An example preset fills everything
// not set explicitly.
func (f *configFlags) build(cmd *cobra.Command) (models.WebsiteConfig, error) {
	cfg := models.WebsiteConfig{
		WebsiteType:  f.websiteType,
		BusinessName: f.name,
		Description:  f.description,
		Tone:         f.tone,
		Features:     f.features,
		Style:        f.style,
		CustomCSS:    f.css,
	}

	if f.example != 0 {
		if f.example < 1 || f.example > len(models.ExampleConfigs) {
			return cfg, fmt.Errorf("invalid example: %d (must be 1-%d)", f.example, len(models.ExampleConfigs))
		}
		preset := models.ApplyExample(models.DefaultConfig(), models.ExampleConfigs[f.example-1])
		for flag, apply := range map[string]func(){
			"type":        func() { cfg.WebsiteType = preset.WebsiteType },
			"name":        func() { cfg.BusinessName = preset.BusinessName },
			"description": func() { cfg.Description = preset.Description },
			"tone":        func() { cfg.Tone = preset.Tone },
			"feature":     func() { cfg.Features = preset.Features },
			"style":       func() { cfg.Style = preset.Style },
		} {
			if !cmd.Flags().Changed(flag) {
				apply()
			}
		}
	}

	return cli.ValidateWebsiteConfig(cfg)
}

// findFavorite resolves ref as an exact id, an id prefix or a business name
func findFavorite(favorites []models.Favorite, ref string) (models.Favorite, error) {
	var matches []models.Favorite
	for _, fav := range favorites {
		if fav.ID == ref {
			return fav, nil
		}
		if strings.HasPrefix(fav.ID, ref) || strings.EqualFold(fav.BusinessName, ref) {
			matches = append(matches, fav)
		}
	}
	switch len(matches) {
	case 0:
		return models.Favorite{}, fmt.Errorf("%w: %s", controller.ErrFavoriteNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Favorite{}, fmt.Errorf("multiple favorites match '%s'. Use the id instead", ref)
	}
}
