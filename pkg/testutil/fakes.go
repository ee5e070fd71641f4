package testutil

// FakeDirectoryPicker returns a canned directory selection and records
// the starting directory it was offered.
type FakeDirectoryPicker struct {
	Result string
	OK     bool

	StartDirs []string
}

// PickDirectory implements picker.DirectoryPicker
func (p *FakeDirectoryPicker) PickDirectory(startDir string) (string, bool) {
	p.StartDirs = append(p.StartDirs, startDir)
	return p.Result, p.OK
}

// FakeFilePicker returns a canned file selection and records the roots
// it was invoked with.
type FakeFilePicker struct {
	Result string
	OK     bool

	Roots []string
}

// PickFile implements picker.FilePicker
func (p *FakeFilePicker) PickFile(root string) (string, bool) {
	p.Roots = append(p.Roots, root)
	return p.Result, p.OK
}

// RecordingNotifier records every dialog it is asked to show
type RecordingNotifier struct {
	Titles   []string
	Messages []string
}

// Notify implements picker.Notifier
func (n *RecordingNotifier) Notify(title, message string) {
	n.Titles = append(n.Titles, title)
	n.Messages = append(n.Messages, message)
}
