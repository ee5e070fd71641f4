// Package bundle generates the MailMate bundle skeleton that wires tt
// into the mail client: an Info.plist plus one .mmCommand plist per
// action. Plists are plain XML, built with etree.
package bundle

import (
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/mailmate-tools/texttemplate/pkg/errors"
	"github.com/mailmate-tools/texttemplate/pkg/logging"
)

const (
	// BundleDirName is the bundle directory created under the output dir
	BundleDirName = "TextTemplate.mmBundle"

	// CommandsDirName holds the per-action command plists
	CommandsDirName = "Commands"

	bundleName       = "TextTemplate"
	bundleIdentifier = "tools.mailmate.texttemplate"
)

type command struct {
	fileName string
	title    string
	shell    string
}

// The two actions the bundle exposes in the client's command menu.
// Both expect to find tt on the bundle's Support/bin path.
var commands = []command{
	{
		fileName: "insert-template.mmCommand",
		title:    "Insert Template",
		shell:    `"$MM_BUNDLE_SUPPORT/bin/tt" insert`,
	},
	{
		fileName: "change-template-root.mmCommand",
		title:    "Change Template Root",
		shell:    `"$MM_BUNDLE_SUPPORT/bin/tt" root choose`,
	},
}

// Write creates the bundle skeleton under dir and returns the bundle
// path. Existing files are overwritten.
func Write(dir string) (string, error) {
	logger := logging.GetLogger("bundle")

	bundleDir := filepath.Join(dir, BundleDirName)
	commandsDir := filepath.Join(bundleDir, CommandsDirName)
	if err := os.MkdirAll(commandsDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrBundleWrite, "failed to create bundle directory %s", bundleDir)
	}

	infoPath := filepath.Join(bundleDir, "Info.plist")
	if err := writeInfoPlist(infoPath); err != nil {
		return "", err
	}

	for _, cmd := range commands {
		cmdPath := filepath.Join(commandsDir, cmd.fileName)
		if err := writeCommandPlist(cmdPath, cmd); err != nil {
			return "", err
		}
	}

	logger.Info().Str("bundle", bundleDir).Msg("Bundle written")
	return bundleDir, nil
}

func writeInfoPlist(path string) error {
	doc, root := newPlist()
	dict := root.CreateElement("dict")
	addString(dict, "name", bundleName)
	addString(dict, "identifier", bundleIdentifier)
	return writePlist(doc, path)
}

func writeCommandPlist(path string, cmd command) error {
	doc, root := newPlist()
	dict := root.CreateElement("dict")
	addString(dict, "name", cmd.title)
	addString(dict, "input", "none")
	addString(dict, "shellScript", cmd.shell)
	return writePlist(doc, path)
}

func newPlist() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(`DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`)
	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	return doc, plist
}

func addString(dict *etree.Element, key, value string) {
	dict.CreateElement("key").SetText(key)
	dict.CreateElement("string").SetText(value)
}

func writePlist(doc *etree.Document, path string) error {
	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		return errors.Wrapf(err, errors.ErrBundleWrite, "failed to write plist %s", path)
	}
	return nil
}
