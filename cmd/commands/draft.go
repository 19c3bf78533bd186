package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith-cli/internal/cli"
	"github.com/sitesmith/sitesmith-cli/pkg/files"
)

// NewDraftCommand groups commands on the auto-saved draft
func NewDraftCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or discard the auto-saved website code",
		Long: `The interface saves the website code being edited every few seconds
and when it exits. The next start offers to restore it. These commands
work on that saved code directly.`,
	}

	cmd.AddCommand(
		newDraftShowCommand(),
		newDraftExportCommand(),
		newDraftCopyCommand(),
		newDraftRestoreCommand(),
		newDraftClearCommand(),
	)
	for _, sub := range cmd.Commands() {
		sub.PreRunE = requireProject
	}
	return cmd
}

func loadDraft(cmd *cobra.Command) (string, error) {
	cc := newContext(cmd)
	defer cc.Close()
	persistence, err := cc.Persistence()
	if err != nil {
		return "", err
	}
	draft, ok := persistence.LoadDraft()
	if !ok {
		return "", fmt.Errorf("no auto-saved draft")
	}
	return draft, nil
}

func newDraftShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := loadDraft(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), draft)
			return nil
		},
	}
}

func newDraftExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the draft to an HTML file",
		Long:  `Write the draft to path, or to output.export_path from settings.yaml (index.html by default).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := loadDraft(cmd)
			if err != nil {
				return err
			}

			cc := newContext(cmd)
			settings, err := cc.LoadSettings()
			if err != nil {
				return err
			}
			path := settings.Output.ExportPath
			if len(args) > 0 {
				path = args[0]
			}
			if err := cli.ValidateExportPath(path); err != nil {
				return err
			}
			if err := files.WriteFile(path, draft); err != nil {
				return err
			}
			cli.PrintSuccess("Exported to %s (%s)", path, cli.FormatBytes(int64(len(draft))))
			return nil
		},
	}
}

func newDraftCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "copy",
		Aliases: []string{"clip"},
		Short:   "Copy the draft to the clipboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := loadDraft(cmd)
			if err != nil {
				return err
			}
			if err := clipboard.WriteAll(draft); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			cli.PrintSuccess("Code copied to clipboard!")
			return nil
		},
	}
}

func newDraftRestoreCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Answer the restore question outside the interface",
		Long: `Ask whether to restore the previous session, as the interface does at
startup. Yes prints the saved code, or writes it to --out, and keeps it for
the next session. No discards it. --yes answers yes without asking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := newContext(cmd)
			defer cc.Close()
			ctrl, err := cc.Controller(false)
			if err != nil {
				return err
			}
			if _, ok := ctrl.PendingDraft(); !ok {
				return fmt.Errorf("no auto-saved draft")
			}

			ctrl.Startup(cli.Prompter{DefaultYes: true})
			reportToasts(ctrl)

			code := ctrl.State().Code
			if code == "" {
				cli.PrintInfo("Draft discarded")
				return nil
			}
			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), code)
				return nil
			}
			if err := cli.ValidateExportPath(outPath); err != nil {
				return err
			}
			if err := files.WriteFile(outPath, code); err != nil {
				return err
			}
			cli.PrintSuccess("Restored to %s (%s)", outPath, cli.FormatBytes(int64(len(code))))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the restored code to this file instead of stdout")
	return cmd
}

func newDraftClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := newContext(cmd)
			defer cc.Close()
			persistence, err := cc.Persistence()
			if err != nil {
				return err
			}
			if err := persistence.ClearDraft(); err != nil {
				return fmt.Errorf("failed to discard draft: %w", err)
			}
			cli.PrintSuccess("Draft discarded")
			return nil
		},
	}
}
