package cli

import (
	"fmt"
	"os"

	"github.com/mailmate-tools/texttemplate/pkg/config"
	"github.com/mailmate-tools/texttemplate/pkg/core"
	"github.com/mailmate-tools/texttemplate/pkg/errors"
	"github.com/mailmate-tools/texttemplate/pkg/style"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the templates under the template root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := config.NewDefaultStore()
			root, ok := store.Root()
			if !ok {
				return errors.New(errors.ErrRootInvalid, "no template root configured (run 'tt root choose')")
			}

			templates, err := core.ListTemplates(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			format := style.DetectFormat(os.Stdout)

			if len(templates) == 0 {
				fmt.Fprintln(out, format.Render(style.MutedStyle, "No templates found under "+root))
				return nil
			}

			fmt.Fprintln(out, format.Render(style.TitleStyle, fmt.Sprintf("Templates in %s", root)))
			fmt.Fprintln(out)

			for _, tmpl := range templates {
				line := tmpl.Name
				if tmpl.Name != tmpl.RelPath {
					line += "  " + format.Render(style.PathStyle, tmpl.RelPath)
				}
				fmt.Fprintln(out, format.Render(style.ListItemStyle, line))
				if tmpl.Description != "" {
					fmt.Fprintln(out, format.Render(style.ListItemStyle, format.Render(style.MutedStyle, tmpl.Description)))
				}
			}
			return nil
		},
	}
}
