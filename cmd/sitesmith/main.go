package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith-cli/cmd/commands"
	"github.com/sitesmith/sitesmith-cli/internal/cli"
	"github.com/sitesmith/sitesmith-cli/internal/logging"
	"github.com/sitesmith/sitesmith-cli/pkg/files"
	"github.com/sitesmith/sitesmith-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quietFlag   bool
	noColorFlag bool
	yesFlag     bool
	verboseFlag bool
	outputFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "sitesmith",
	Short: "Generate single-page websites from a short description",
	Long: `Sitesmith turns a business description into a complete single-page
website using a hosted language model. Run it without arguments for the
interactive interface, or use the subcommands from scripts.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quietFlag, noColorFlag, yesFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !files.ProjectExists() {
			fmt.Fprintf(os.Stderr, "Error: No %s directory found in the current directory.\n", files.SitesmithDir)
			fmt.Fprintf(os.Stderr, "Please run 'sitesmith init' first to initialize a new project.\n")
			os.Exit(1)
		}

		// The interface owns the terminal, so diagnostics go to a file
		logger, closer, err := logging.NewFile(files.LogPath(), verboseFlag)
		if err != nil {
			return err
		}
		defer closer.Close()

		cc := cli.NewCommandContext(logger)
		defer cc.Close()

		ctrl, err := cc.Controller(false)
		if err != nil {
			return err
		}
		if cc.Settings.AI.APIKey == "" {
			cli.PrintWarning("No API key configured. Set GEMINI_API_KEY or API_KEY to generate websites.")
		}

		tui.Version = version
		app := tui.NewApp(ctrl, cc.Settings, logger)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Sitesmith project",
	Long:  `Creates the .sitesmith folder with default settings in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		cli.PrintInfo("Initializing Sitesmith project in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		cli.PrintSuccess("Created %s folder structure", files.SitesmithDir)
		cli.PrintSuccess("Settings written to %s", files.SettingsPath())
		cli.PrintInfo("Set GEMINI_API_KEY, then run 'sitesmith' to start the interactive interface.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Sitesmith",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Sitesmith version %s\n", version)
	},
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Plain-text status prefixes")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Answer yes to confirmations")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewPromptCommand())
	rootCmd.AddCommand(commands.NewFavoritesCommand())
	rootCmd.AddCommand(commands.NewDraftCommand())
	rootCmd.AddCommand(commands.NewExamplesCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
