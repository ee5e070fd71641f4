package core

import (
	"os"
	"strings"

	"github.com/mailmate-tools/texttemplate/pkg/config"
	"github.com/mailmate-tools/texttemplate/pkg/errors"
	"github.com/mailmate-tools/texttemplate/pkg/insert"
	"github.com/mailmate-tools/texttemplate/pkg/logging"
	"github.com/mailmate-tools/texttemplate/pkg/picker"
	"github.com/mailmate-tools/texttemplate/pkg/template"
)

// Dialog shown when no template root can be resolved
const (
	NoRootDialogTitle   = "TextTemplate"
	NoRootDialogMessage = "No template root is configured. Choose a template folder and try again."
)

// InsertOptions carries everything the insertion pipeline needs. The
// pickers and notifier are injected so the pipeline is testable without
// a display.
type InsertOptions struct {
	Inputs   EnvInputs
	Store    *config.Store
	Dirs     picker.DirectoryPicker
	Files    picker.FilePicker
	Notifier picker.Notifier

	// StartDir overrides the fallback starting directory for the root
	// prompt (settings file knob)
	StartDir string
}

// InsertStatus describes how the pipeline ended
type InsertStatus string

const (
	// StatusInserted means the template was spliced into the target
	StatusInserted InsertStatus = "inserted"

	// StatusNoRoot means no template root could be resolved; the user
	// was told via dialog and the target was left untouched
	StatusNoRoot InsertStatus = "no-root"

	// StatusCancelled means the user dismissed the template picker;
	// the target was left untouched
	StatusCancelled InsertStatus = "cancelled"
)

// InsertResult reports what the pipeline did
type InsertResult struct {
	Status       InsertStatus
	Root         string
	TemplatePath string
}

// Insert runs the pipeline: resolve root (prompting and persisting if
// unset), pick a template, substitute placeholders, splice into the
// target file. Cancellations end the run without error; only real I/O
// failures return one.
func Insert(opts InsertOptions) (InsertResult, error) {
	logger := logging.GetLogger("core.insert")
	result := InsertResult{}

	root, ok := opts.Store.Root()
	if !ok {
		var err error
		root, ok, err = opts.Store.PromptForRoot(opts.Dirs, opts.StartDir)
		if err != nil {
			return result, err
		}
	}

	if !ok {
		logger.Info().Msg("No template root resolved, showing dialog")
		opts.Notifier.Notify(NoRootDialogTitle, NoRootDialogMessage)
		result.Status = StatusNoRoot
		return result, nil
	}
	result.Root = root

	templatePath, ok := opts.Files.PickFile(root)
	if !ok {
		logger.Info().Str("root", root).Msg("Template picker cancelled, nothing to insert")
		result.Status = StatusCancelled
		return result, nil
	}
	result.TemplatePath = templatePath

	content, err := os.ReadFile(templatePath)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrTemplateRead, "failed to read template %s", templatePath)
	}

	_, body := template.ParseFrontMatter(string(content))
	text := template.Substitute(body, opts.Inputs.Recipient)
	// InsertAt terminates the inserted text itself; keep a template's
	// own trailing newline from doubling up into a blank line.
	text = strings.TrimSuffix(text, "\n")

	if err := insert.InsertAt(opts.Inputs.TargetPath, opts.Inputs.LineNumber, text); err != nil {
		return result, err
	}

	logger.Info().
		Str("template", templatePath).
		Str("target", opts.Inputs.TargetPath).
		Int("line", opts.Inputs.LineNumber).
		Msg("Template inserted")

	result.Status = StatusInserted
	return result, nil
}
