// Package paths provides centralized path and environment-variable
// handling for texttemplate. The config dotfile keeps the fixed home
// location the bundle has always used; everything else follows the XDG
// Base Directory specification.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names supplied by the host mail application
const (
	// EnvEditFilepath is the path of the message file being edited
	EnvEditFilepath = "MM_EDIT_FILEPATH"

	// EnvLineNumber is the 1-based line number of the cursor
	EnvLineNumber = "MM_LINE_NUMBER"

	// EnvToFirstName is the recipient's first name, if known
	EnvToFirstName = "MM_TO_FIRSTNAME"

	// EnvToFullName is the recipient's full name, if known
	EnvToFullName = "MM_TO_FULLNAME"
)

// Fixed file and directory names
const (
	// ConfigFileName is the dotfile holding the template root, directly
	// under the user's home directory
	ConfigFileName = ".texttemplate_config"

	// AppDirName is the directory name used under XDG base directories
	AppDirName = "texttemplate"

	// SettingsFileName is the optional TOML settings file name
	SettingsFileName = "config.toml"

	// DefaultStartDirName is the directory offered to the picker when no
	// template root has been configured yet
	DefaultStartDirName = "Documents"
)

// ConfigFilePath returns the path of the template-root dotfile. The
// location is fixed under the home directory; when the home directory
// cannot be determined the bare file name is returned, which resolves
// against the working directory.
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(home, ConfigFileName)
}

// SettingsFilePath returns the path of the optional settings file under
// the XDG config directory ($XDG_CONFIG_HOME or ~/.config).
func SettingsFilePath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, SettingsFileName)
}

// DefaultStartDir returns the directory the root picker starts in when
// no template root has been configured.
func DefaultStartDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultStartDirName
	}
	return filepath.Join(home, DefaultStartDirName)
}

// SupportBinDir returns the bundle's Support/bin directory, resolved
// relative to the running executable. The bundled picker and dialog
// scripts live there.
func SupportBinDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
