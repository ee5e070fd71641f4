package picker

import (
	"os/exec"
	"strings"

	"github.com/mailmate-tools/texttemplate/pkg/logging"
	"github.com/rs/zerolog"
)

// ScriptPicker implements DirectoryPicker and FilePicker by invoking an
// external executable with a single argument, the starting directory.
// Exit code zero plus a non-empty first line on stdout is a selection;
// any other outcome is a cancellation. The call blocks without a
// timeout: the scripts are interactive GUI dialogs and the user may
// leave them open indefinitely.
type ScriptPicker struct {
	command string
	logger  zerolog.Logger
}

// NewScriptPicker creates a picker that shells out to command
func NewScriptPicker(command string) *ScriptPicker {
	return &ScriptPicker{
		command: command,
		logger:  logging.GetLogger("picker.script"),
	}
}

// PickDirectory implements DirectoryPicker
func (p *ScriptPicker) PickDirectory(startDir string) (string, bool) {
	return p.run(startDir)
}

// PickFile implements FilePicker
func (p *ScriptPicker) PickFile(root string) (string, bool) {
	return p.run(root)
}

func (p *ScriptPicker) run(arg string) (string, bool) {
	logging.LogCommand(p.command, []string{arg})

	out, err := exec.Command(p.command, arg).Output()
	if err != nil {
		// Non-zero exit means the user cancelled. Treating exec
		// failures the same way keeps a missing script non-fatal.
		p.logger.Debug().Err(err).Str("command", p.command).Msg("Picker did not return a selection")
		return "", false
	}

	selected := firstLine(string(out))
	if selected == "" {
		p.logger.Debug().Str("command", p.command).Msg("Picker returned empty output")
		return "", false
	}

	p.logger.Debug().Str("command", p.command).Str("selected", selected).Msg("Picker returned a selection")
	return selected, true
}

// ScriptNotifier implements Notifier by invoking an external dialog
// command with title and message arguments.
type ScriptNotifier struct {
	command string
	logger  zerolog.Logger
}

// NewScriptNotifier creates a notifier that shells out to command
func NewScriptNotifier(command string) *ScriptNotifier {
	return &ScriptNotifier{
		command: command,
		logger:  logging.GetLogger("picker.notifier"),
	}
}

// Notify implements Notifier. Dialog failures are logged and swallowed:
// the dialog is informational and must not change the exit status.
func (n *ScriptNotifier) Notify(title, message string) {
	logging.LogCommand(n.command, []string{title, message})

	if err := exec.Command(n.command, title, message).Run(); err != nil {
		n.logger.Warn().Err(err).Str("command", n.command).Msg("Failed to show dialog")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
