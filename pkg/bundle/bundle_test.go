package bundle

import (
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	bundleDir, err := Write(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, BundleDirName), bundleDir)

	assert.FileExists(t, filepath.Join(bundleDir, "Info.plist"))
	assert.FileExists(t, filepath.Join(bundleDir, CommandsDirName, "insert-template.mmCommand"))
	assert.FileExists(t, filepath.Join(bundleDir, CommandsDirName, "change-template-root.mmCommand"))
}

func TestWriteInfoPlistContent(t *testing.T) {
	dir := t.TempDir()

	bundleDir, err := Write(dir)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(filepath.Join(bundleDir, "Info.plist")))

	plist := doc.SelectElement("plist")
	require.NotNil(t, plist)
	assert.Equal(t, "1.0", plist.SelectAttrValue("version", ""))

	dict := plist.SelectElement("dict")
	require.NotNil(t, dict)
	assert.Equal(t, "TextTemplate", plistValue(t, dict, "name"))
	assert.Equal(t, "tools.mailmate.texttemplate", plistValue(t, dict, "identifier"))
}

func TestWriteCommandPlistContent(t *testing.T) {
	dir := t.TempDir()

	bundleDir, err := Write(dir)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(filepath.Join(bundleDir, CommandsDirName, "insert-template.mmCommand")))

	dict := doc.SelectElement("plist").SelectElement("dict")
	require.NotNil(t, dict)
	assert.Equal(t, "Insert Template", plistValue(t, dict, "name"))
	assert.Contains(t, plistValue(t, dict, "shellScript"), "tt\" insert")
}

func TestWriteOverwritesExisting(t *testing.T) {
	dir := t.TempDir()

	_, err := Write(dir)
	require.NoError(t, err)
	_, err = Write(dir)
	require.NoError(t, err)
}

// plistValue returns the <string> following the <key> named key
func plistValue(t *testing.T, dict *etree.Element, key string) string {
	t.Helper()

	children := dict.ChildElements()
	for i, child := range children {
		if child.Tag == "key" && child.Text() == key && i+1 < len(children) {
			return children[i+1].Text()
		}
	}
	t.Fatalf("key %q not found in dict", key)
	return ""
}
