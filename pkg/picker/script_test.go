package picker

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("picker scripts are POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "picker.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestScriptPickerSelection(t *testing.T) {
	script := writeScript(t, `echo "$1/selected.txt"`)
	p := NewScriptPicker(script)

	path, ok := p.PickFile("/templates")

	require.True(t, ok)
	assert.Equal(t, "/templates/selected.txt", path)
}

func TestScriptPickerTrimsOutput(t *testing.T) {
	script := writeScript(t, "echo \"  /picked/dir  \"\necho second line is ignored")
	p := NewScriptPicker(script)

	path, ok := p.PickDirectory("/start")

	require.True(t, ok)
	assert.Equal(t, "/picked/dir", path)
}

func TestScriptPickerNonZeroExitIsCancellation(t *testing.T) {
	script := writeScript(t, "exit 1")
	p := NewScriptPicker(script)

	_, ok := p.PickDirectory("/start")
	assert.False(t, ok)
}

func TestScriptPickerEmptyOutputIsCancellation(t *testing.T) {
	script := writeScript(t, "exit 0")
	p := NewScriptPicker(script)

	_, ok := p.PickFile("/templates")
	assert.False(t, ok)
}

func TestScriptPickerMissingCommandIsCancellation(t *testing.T) {
	p := NewScriptPicker(filepath.Join(t.TempDir(), "no-such-picker"))

	_, ok := p.PickDirectory("/start")
	assert.False(t, ok)
}

func TestScriptNotifierPassesTitleAndMessage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dialog.txt")
	script := writeScript(t, `printf '%s|%s' "$1" "$2" > `+out)
	n := NewScriptNotifier(script)

	n.Notify("Title", "Something happened")

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	parts := strings.Split(string(data), "|")
	require.Len(t, parts, 2)
	assert.Equal(t, "Title", parts[0])
	assert.Equal(t, "Something happened", parts[1])
}

func TestScriptNotifierFailureIsSwallowed(t *testing.T) {
	n := NewScriptNotifier(filepath.Join(t.TempDir(), "no-such-dialog"))

	// Must not panic or exit; dialogs are best-effort
	n.Notify("Title", "Message")
}
