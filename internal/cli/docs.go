package cli

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mailmate-tools/texttemplate/pkg/style"
	"github.com/spf13/cobra"
)

//go:embed docs/usage.md
var usageDoc string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the usage guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(usageDoc))
			return nil
		},
	}
}

// renderMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering is unavailable.
func renderMarkdown(content string) string {
	if style.DetectFormat(os.Stdout) == style.FormatText {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
