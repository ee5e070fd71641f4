package cli

import (
	"fmt"
	"os"

	"github.com/mailmate-tools/texttemplate/pkg/config"
	"github.com/mailmate-tools/texttemplate/pkg/errors"
	"github.com/mailmate-tools/texttemplate/pkg/picker"
	"github.com/spf13/cobra"
)

func newTemplateRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "root",
		Short: "Show or change the template root directory",
		Long: `The template root is the folder your template files live in. It is
stored in ` + "`~/.texttemplate_config`" + ` and read on every insert.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := config.NewDefaultStore()
			root, ok := store.Root()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No template root configured (run 'tt root choose')")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}

	cmd.AddCommand(newRootSetCmd())
	cmd.AddCommand(newRootChooseCmd())
	return cmd
}

func newRootSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <directory>",
		Short: "Set the template root without a picker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				return errors.Newf(errors.ErrRootInvalid, "not an existing directory: %s", dir)
			}

			store := config.NewDefaultStore()
			if err := store.SetRoot(dir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Template root set to %s\n", dir)
			return nil
		},
	}
}

func newRootChooseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choose",
		Short: "Choose the template root with the directory picker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadDefaultSettings()
			if err != nil {
				return err
			}

			store := config.NewDefaultStore()
			dirs := picker.NewScriptPicker(settings.DirectoryCommand())

			root, ok, err := store.PromptForRoot(dirs, settings.StartDir)
			if err != nil {
				return err
			}
			if !ok {
				// Cancellation is a normal outcome, not an error
				fmt.Fprintln(cmd.OutOrStdout(), "No directory selected, template root unchanged")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Template root set to %s\n", root)
			return nil
		},
	}
}
