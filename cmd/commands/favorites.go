package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith-cli/internal/cli"
	"github.com/sitesmith/sitesmith-cli/pkg/models"
	"github.com/sitesmith/sitesmith-cli/pkg/search"
)

// FavoritesResult represents the output structure for favorites list
type FavoritesResult struct {
	Items []models.Favorite `json:"items" yaml:"items"`
	Count int               `json:"count" yaml:"count"`
}

// NewFavoritesCommand groups the favorites subcommands
func NewFavoritesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav", "favs"},
		Short:   "Manage saved website configurations",
		Long: `List, inspect, save and delete favorite configurations.

Favorites are identified by id. Commands that take a favorite also accept
an id prefix or the business name.`,
	}

	cmd.AddCommand(
		newFavoritesListCommand(),
		newFavoritesShowCommand(),
		newFavoritesSaveCommand(),
		newFavoritesDeleteCommand(),
		newFavoritesClearCommand(),
	)
	for _, sub := range cmd.Commands() {
		sub.PreRunE = requireProject
	}
	return cmd
}

func newFavoritesListCommand() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List favorites, newest first",
		Long: `List favorites, newest first.

Use --search to filter. Terms are ANDed unless joined with OR, and NOT
negates the next term:
  sitesmith favorites list --search 'style:dark NOT type:restaurant'
  sitesmith favorites list --search 'has:"contact form" OR bakery'

Fields: type, tone, style, feature (or has), name. Bare words match the
business name or description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			cc := newContext(cmd)
			defer cc.Close()
			persistence, err := cc.Persistence()
			if err != nil {
				return err
			}
			favorites, err := search.Filter(persistence.LoadFavorites(), query)
			if err != nil {
				return fmt.Errorf("invalid search: %w", err)
			}

			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, FavoritesResult{Items: favorites, Count: len(favorites)})
			}

			if len(favorites) == 0 {
				if query != "" {
					cli.PrintInfo("No favorites match the search")
				} else {
					cli.PrintInfo("No favorites yet. Save one with 'sitesmith favorites save'")
				}
				return nil
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("ID", "BUSINESS", "TYPE", "TONE", "STYLE", "FEATURES")
			for _, fav := range favorites {
				table.Row(
					fav.ID[:min(8, len(fav.ID))],
					cli.TruncateString(fav.BusinessName, 28),
					fav.WebsiteType,
					fav.Tone,
					fav.Style,
					fmt.Sprintf("%d", len(fav.Features)),
				)
			}
			return table.Flush()
		},
	}

	cmd.Flags().StringVar(&query, "search", "", "Filter favorites with a search query")
	return cmd
}

func newFavoritesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <favorite>",
		Short: "Show one favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			cc := newContext(cmd)
			defer cc.Close()
			persistence, err := cc.Persistence()
			if err != nil {
				return err
			}
			fav, err := findFavorite(persistence.LoadFavorites(), args[0])
			if err != nil {
				return err
			}

			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, fav)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ID:          %s\n", fav.ID)
			fmt.Fprintf(w, "Business:    %s\n", fav.BusinessName)
			fmt.Fprintf(w, "Type:        %s\n", fav.WebsiteType)
			fmt.Fprintf(w, "Tone:        %s\n", fav.Tone)
			fmt.Fprintf(w, "Style:       %s\n", fav.Style)
			fmt.Fprintf(w, "Features:    %s\n", strings.Join(fav.Features, ", "))
			if fav.CustomCSS != "" {
				fmt.Fprintf(w, "Custom CSS:  %s\n", fav.CustomCSS)
			}
			fmt.Fprintf(w, "Description:\n%s\n", fav.Description)
			return nil
		},
	}
}

func newFavoritesSaveCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a configuration to favorites",
		Long: `Save a configuration to favorites. A favorite with the same business
name and description is not saved twice.`,
		Example: `  sitesmith favorites save -n "Acme" -d "A shop" --tone "Playful & Fun"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.build(cmd)
			if err != nil {
				return err
			}
			cc := newContext(cmd)
			defer cc.Close()
			ctrl, err := cc.Controller(false)
			if err != nil {
				return err
			}
			ctrl.LoadFavorites()
			ctrl.SetConfig(cfg)

			fav, saved := ctrl.SaveFavorite()
			reportToasts(ctrl)
			if saved {
				cli.PrintInfo("id: %s", fav.ID)
			}
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}

func newFavoritesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <favorite>",
		Aliases: []string{"rm"},
		Short:   "Delete one favorite",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := newContext(cmd)
			defer cc.Close()
			ctrl, err := cc.Controller(false)
			if err != nil {
				return err
			}
			ctrl.LoadFavorites()

			fav, err := findFavorite(ctrl.State().Favorites, args[0])
			if err != nil {
				return err
			}
			ctrl.DeleteFavorite(fav.ID)
			reportToasts(ctrl)
			return nil
		},
	}
}

func newFavoritesClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every favorite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := cli.Confirm("Are you sure you want to clear all favorites? This cannot be undone.", false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Cancelled")
				return nil
			}

			cc := newContext(cmd)
			defer cc.Close()
			ctrl, err := cc.Controller(false)
			if err != nil {
				return err
			}
			ctrl.ClearFavorites()
			reportToasts(ctrl)
			return nil
		},
	}
}
