// Package picker defines the interactive collaborators texttemplate
// depends on. The host-facing implementations shell out to the bundled
// GUI scripts; tests inject fakes.
package picker

// DirectoryPicker lets the user choose a directory, starting from
// startDir. ok is false when the user cancelled or the picker failed.
type DirectoryPicker interface {
	PickDirectory(startDir string) (path string, ok bool)
}

// FilePicker lets the user choose a regular file under root. ok is
// false when the user cancelled or the picker failed.
type FilePicker interface {
	PickFile(root string) (path string, ok bool)
}

// Notifier shows a user-visible message. Implementations must never
// make notification failures fatal.
type Notifier interface {
	Notify(title, message string)
}
