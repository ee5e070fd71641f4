// Package config persists the template root directory and loads the
// optional settings file. The template root lives in a single-line
// dotfile under the user's home directory; the settings file is TOML
// under the XDG config directory.
package config

import (
	"os"
	"strings"

	"github.com/mailmate-tools/texttemplate/pkg/errors"
	"github.com/mailmate-tools/texttemplate/pkg/logging"
	"github.com/mailmate-tools/texttemplate/pkg/paths"
	"github.com/mailmate-tools/texttemplate/pkg/picker"
	"github.com/rs/zerolog"
)

// Store reads and writes the template root dotfile. The dotfile holds
// at most one value: the trimmed path of the template root directory,
// newline-terminated. An absent or empty file means "unset".
type Store struct {
	path   string
	logger zerolog.Logger
}

// NewStore creates a store backed by the dotfile at path. Tests pass a
// path under a temporary directory.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		logger: logging.GetLogger("config.store"),
	}
}

// NewDefaultStore creates a store backed by the fixed dotfile location
// under the user's home directory.
func NewDefaultStore() *Store {
	return NewStore(paths.ConfigFilePath())
}

// Path returns the dotfile location backing this store
func (s *Store) Path() string {
	return s.path
}

// Root returns the configured template root. ok is false when no root
// has been persisted. Read errors are treated as "unset" so that a
// damaged dotfile never blocks the insertion pipeline; the user simply
// gets prompted again.
func (s *Store) Root() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", s.path).Msg("Config dotfile not readable, treating root as unset")
		return "", false
	}

	root := strings.TrimSpace(string(data))
	if root == "" {
		return "", false
	}
	return root, true
}

// SetRoot overwrites the dotfile with the trimmed path plus a trailing
// newline. Write failures are fatal to the caller.
func (s *Store) SetRoot(root string) error {
	trimmed := strings.TrimSpace(root)
	if err := os.WriteFile(s.path, []byte(trimmed+"\n"), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write config file %s", s.path)
	}

	s.logger.Info().Str("root", trimmed).Str("path", s.path).Msg("Template root persisted")
	return nil
}

// PromptForRoot asks the user to choose a template root directory,
// starting from the configured root, then fallbackStartDir, then the
// default start directory. On a valid selection the root is persisted
// before being returned. ok is false when the user cancelled or picked
// something that is not an existing directory. The returned error is
// non-nil only when the selection could not be persisted.
func (s *Store) PromptForRoot(dirs picker.DirectoryPicker, fallbackStartDir string) (string, bool, error) {
	startDir, ok := s.Root()
	if !ok {
		startDir = fallbackStartDir
	}
	if startDir == "" {
		startDir = paths.DefaultStartDir()
	}

	selected, ok := dirs.PickDirectory(startDir)
	if !ok {
		return "", false, nil
	}

	info, err := os.Stat(selected)
	if err != nil || !info.IsDir() {
		s.logger.Warn().Str("selected", selected).Msg("Picker returned a path that is not an existing directory")
		return "", false, nil
	}

	if err := s.SetRoot(selected); err != nil {
		return "", false, err
	}
	return selected, true, nil
}
