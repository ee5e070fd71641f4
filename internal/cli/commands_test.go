package cli

import (
	"bytes"
	"testing"

	"github.com/mailmate-tools/texttemplate/pkg/errors"
	"github.com/mailmate-tools/texttemplate/pkg/paths"
	"github.com/mailmate-tools/texttemplate/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tt version")
}

func TestRootCommandUnset(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := executeCommand(t, "root")
	require.NoError(t, err)
	assert.Contains(t, out, "No template root configured")
}

func TestRootSetAndShow(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	dir := env.MkdirAll("Templates")

	out, err := executeCommand(t, "root", "set", dir)
	require.NoError(t, err)
	assert.Contains(t, out, dir)

	out, err = executeCommand(t, "root")
	require.NoError(t, err)
	assert.Contains(t, out, dir)

	// The dotfile holds exactly the trimmed path
	assert.Equal(t, dir+"\n", env.ReadFile(env.ConfigPath))
}

func TestRootSetRejectsNonDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	file := env.WriteFile("file.txt", "not a dir\n")

	_, err := executeCommand(t, "root", "set", file)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRootInvalid))
	assert.NoFileExists(t, env.ConfigPath)
}

func TestInsertMissingEnvFails(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := executeCommand(t, "insert")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnvMissing))
	assert.NoFileExists(t, env.ConfigPath)
}

func TestInsertMissingLineNumberFails(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	target := env.WriteFile("draft.eml", "one\ntwo\n")
	t.Setenv(paths.EnvEditFilepath, target)

	_, err := executeCommand(t, "insert")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnvMissing))
	assert.Equal(t, "one\ntwo\n", env.ReadFile(target))
}

func TestListWithoutRootFails(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := executeCommand(t, "list")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRootInvalid))
}

func TestListShowsTemplates(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	dir := env.MkdirAll("Templates")
	env.WriteFile("Templates/greeting.txt", "---\nname: Greeting\n---\nHi\n")

	_, err := executeCommand(t, "root", "set", dir)
	require.NoError(t, err)

	out, err := executeCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Greeting")
}

func TestBundleCommand(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	dir := env.MkdirAll("out")

	out, err := executeCommand(t, "bundle", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "TextTemplate.mmBundle")
}

func TestDocsCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := executeCommand(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "TextTemplate")
}
