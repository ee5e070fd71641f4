package cli

import (
	"github.com/mailmate-tools/texttemplate/pkg/config"
	"github.com/mailmate-tools/texttemplate/pkg/core"
	"github.com/mailmate-tools/texttemplate/pkg/logging"
	"github.com/mailmate-tools/texttemplate/pkg/picker"
	"github.com/spf13/cobra"
)

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert",
		Short: "Pick a template and insert it into the message being edited",
		Long: `Insert runs the bundle's main action. The mail client supplies the
message file and cursor line through MM_EDIT_FILEPATH and
MM_LINE_NUMBER; MM_TO_FIRSTNAME and MM_TO_FULLNAME fill the recipient
placeholders. A cancelled picker ends the run without touching the
message.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.insert")

			inputs, err := core.ParseEnv()
			if err != nil {
				return err
			}

			settings, err := config.LoadDefaultSettings()
			if err != nil {
				return err
			}

			result, err := core.Insert(core.InsertOptions{
				Inputs:   inputs,
				Store:    config.NewDefaultStore(),
				Dirs:     picker.NewScriptPicker(settings.DirectoryCommand()),
				Files:    picker.NewScriptPicker(settings.FileCommand()),
				Notifier: picker.NewScriptNotifier(settings.DialogCommand()),
				StartDir: settings.StartDir,
			})
			if err != nil {
				return err
			}

			logger.Info().
				Str("status", string(result.Status)).
				Str("template", result.TemplatePath).
				Msg("Insert finished")
			return nil
		},
	}
}
