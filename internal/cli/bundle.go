package cli

import (
	"fmt"

	"github.com/mailmate-tools/texttemplate/pkg/bundle"
	"github.com/spf13/cobra"
)

func newBundleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bundle <directory>",
		Short: "Write the MailMate bundle skeleton",
		Long: `Bundle writes the plists that register tt's actions with the mail
client: an Info.plist plus one command plist per action. Copy the
resulting bundle into the client's bundle directory and place the tt
binary (with its picker scripts) under the bundle's Support/bin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundleDir, err := bundle.Write(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Bundle written to %s\n", bundleDir)
			return nil
		},
	}
}
