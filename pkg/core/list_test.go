package core

import (
	"testing"

	"github.com/mailmate-tools/texttemplate/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTemplates(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	root := env.MkdirAll("Templates")
	env.WriteFile("Templates/b.txt", "plain body\n")
	env.WriteFile("Templates/a.txt", "---\nname: Greeting\ndescription: Opening line\n---\nHi\n")
	env.WriteFile("Templates/sub/c.txt", "nested\n")
	env.WriteFile("Templates/.hidden.txt", "ignored\n")
	env.MkdirAll("Templates/.git")

	templates, err := ListTemplates(root)
	require.NoError(t, err)

	require.Len(t, templates, 3)
	assert.Equal(t, "a.txt", templates[0].RelPath)
	assert.Equal(t, "Greeting", templates[0].Name)
	assert.Equal(t, "Opening line", templates[0].Description)
	assert.Equal(t, "b.txt", templates[1].RelPath)
	assert.Equal(t, "b.txt", templates[1].Name)
	assert.Equal(t, "sub/c.txt", templates[2].RelPath)
}

func TestListTemplatesEmptyRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	root := env.MkdirAll("Empty")

	templates, err := ListTemplates(root)
	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestListTemplatesMissingRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := ListTemplates(env.HomeDir + "/does-not-exist")
	assert.Error(t, err)
}
