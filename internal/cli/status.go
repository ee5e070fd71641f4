package cli

import (
	"os"

	"github.com/mailmate-tools/texttemplate/pkg/config"
	"github.com/mailmate-tools/texttemplate/pkg/core"
	"github.com/mailmate-tools/texttemplate/pkg/logging"
	"github.com/mailmate-tools/texttemplate/pkg/paths"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report configuration and environment state",
		Long: `Status is the diagnostic view for bundle authors: where the config
lives, whether the template root resolves, which picker commands would
be invoked, and which host variables are visible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := config.NewDefaultStore()

			pterm.DefaultSection.Println("Template root")
			if root, ok := store.Root(); ok {
				if info, err := os.Stat(root); err == nil && info.IsDir() {
					pterm.Success.Printfln("%s (from %s)", root, store.Path())
				} else {
					pterm.Warning.Printfln("%s is configured but is not an existing directory", root)
				}
			} else {
				pterm.Warning.Printfln("Not configured (%s missing or empty)", store.Path())
			}

			pterm.DefaultSection.Println("Settings")
			settingsPath := paths.SettingsFilePath()
			settings, err := config.LoadSettings(settingsPath)
			if err != nil {
				pterm.Error.Printfln("%s: %v", settingsPath, err)
			} else if _, statErr := os.Stat(settingsPath); statErr != nil {
				pterm.Info.Printfln("%s not present, using defaults", settingsPath)
			} else {
				pterm.Success.Printfln("Loaded %s", settingsPath)
			}

			pterm.DefaultSection.Println("Picker commands")
			reportCommand("directory picker", settings.DirectoryCommand())
			reportCommand("file picker", settings.FileCommand())
			reportCommand("dialog", settings.DialogCommand())

			pterm.DefaultSection.Println("Host environment")
			reportEnv(paths.EnvEditFilepath)
			reportEnv(paths.EnvLineNumber)
			reportEnv(paths.EnvToFirstName)
			reportEnv(paths.EnvToFullName)

			pterm.DefaultSection.Println("Log file")
			pterm.Info.Println(logging.LogFilePath())

			if _, err := core.ParseEnv(); err != nil {
				pterm.Info.Println("'tt insert' would fail: missing host environment")
			}
			return nil
		},
	}
}

func reportCommand(name, command string) {
	if _, err := os.Stat(command); err == nil {
		pterm.Success.Printfln("%s: %s", name, command)
	} else {
		pterm.Warning.Printfln("%s: %s (not found)", name, command)
	}
}

func reportEnv(name string) {
	if value, ok := os.LookupEnv(name); ok {
		pterm.Success.Printfln("%s=%s", name, value)
	} else {
		pterm.Info.Printfln("%s unset", name)
	}
}
