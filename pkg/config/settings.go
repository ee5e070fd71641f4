package config

import (
	"os"
	"path/filepath"

	"github.com/mailmate-tools/texttemplate/pkg/errors"
	"github.com/mailmate-tools/texttemplate/pkg/paths"
	toml "github.com/pelletier/go-toml/v2"
)

// Settings are the optional, advanced knobs from the TOML settings
// file. Everything has a working default; most installs never create
// the file.
type Settings struct {
	Picker PickerSettings `toml:"picker"`
	Dialog DialogSettings `toml:"dialog"`

	// StartDir overrides the directory the root picker starts in when
	// no template root is configured
	StartDir string `toml:"start_dir"`
}

// PickerSettings override the bundled picker scripts
type PickerSettings struct {
	DirectoryCommand string `toml:"directory_command"`
	FileCommand      string `toml:"file_command"`
}

// DialogSettings override the bundled alert script
type DialogSettings struct {
	Command string `toml:"command"`
}

// Bundled script names, resolved against the Support/bin directory
// when no override is configured.
const (
	defaultDirectoryScript = "pick-root"
	defaultFileScript      = "pick-template"
	defaultDialogScript    = "show-alert"
)

// LoadSettings reads the settings file at path. A missing file yields
// zero-value settings; a file that exists but cannot be parsed is an
// error, so that a typo does not silently fall back to defaults.
func LoadSettings(path string) (Settings, error) {
	var settings Settings

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, errors.Wrapf(err, errors.ErrSettingsParse, "failed to read settings file %s", path)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, errors.Wrapf(err, errors.ErrSettingsParse, "failed to parse settings file %s", path)
	}
	return settings, nil
}

// LoadDefaultSettings reads the settings file from its XDG location
func LoadDefaultSettings() (Settings, error) {
	return LoadSettings(paths.SettingsFilePath())
}

// DirectoryCommand returns the directory-picker command to invoke
func (s Settings) DirectoryCommand() string {
	if s.Picker.DirectoryCommand != "" {
		return s.Picker.DirectoryCommand
	}
	return filepath.Join(paths.SupportBinDir(), defaultDirectoryScript)
}

// FileCommand returns the file-picker command to invoke
func (s Settings) FileCommand() string {
	if s.Picker.FileCommand != "" {
		return s.Picker.FileCommand
	}
	return filepath.Join(paths.SupportBinDir(), defaultFileScript)
}

// DialogCommand returns the alert-dialog command to invoke
func (s Settings) DialogCommand() string {
	if s.Dialog.Command != "" {
		return s.Dialog.Command
	}
	return filepath.Join(paths.SupportBinDir(), defaultDialogScript)
}
