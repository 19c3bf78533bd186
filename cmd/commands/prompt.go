package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith-cli/internal/cli"
	"github.com/sitesmith/sitesmith-cli/pkg/prompt"
)

// PromptResult is the structured form of the prompt command output
type PromptResult struct {
	Prompt          string `json:"prompt" yaml:"prompt"`
	EstimatedTokens int    `json:"estimated_tokens" yaml:"estimated_tokens"`
}

// NewPromptCommand prints the instruction that generate would send
func NewPromptCommand() *cobra.Command {
	var (
		flags      configFlags
		showTokens bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt sent to the model",
		Long: `Compile a website description into the exact instruction text that
'sitesmith generate' sends, without calling the model.`,
		Example: `  sitesmith prompt -n "Acme" -d "A shop"
  sitesmith prompt --example 1 --tokens
  sitesmith prompt -n "Acme" -d "A shop" -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			cfg, err := flags.build(cmd)
			if err != nil {
				return err
			}
			if err := prompt.Validate(cfg); err != nil {
				return err
			}

			text := prompt.Compile(cfg)
			tokens := prompt.EstimateTokens(text)

			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, PromptResult{Prompt: text, EstimatedTokens: tokens})
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			if showTokens {
				fmt.Fprintf(cmd.ErrOrStderr(), "\n%s\n", prompt.FormatTokenCount(tokens))
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&showTokens, "tokens", false, "Show the estimated token count")

	return cmd
}
