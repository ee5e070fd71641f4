// Package insert splices a line of text into a line-oriented file. The
// file is read whole, mutated in memory, and rewritten; there is no
// backup, atomic replace, or locking. The tool runs single-shot on a
// file the mail client hands it, so last writer wins.
package insert

import (
	"os"
	"strings"

	"github.com/mailmate-tools/texttemplate/pkg/errors"
)

// InsertAt inserts text as a new line into the file at path. lineNumber
// is 1-based; values below 1 clamp to the first line, values past the
// end of the file append the text as the final line. All existing lines
// keep their relative order.
func InsertAt(path string, lineNumber int, text string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTargetRead, "failed to read target file %s", path)
	}

	updated := spliceLine(string(data), lineNumber, text)

	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(updated), mode); err != nil {
		return errors.Wrapf(err, errors.ErrTargetWrite, "failed to write target file %s", path)
	}
	return nil
}

// spliceLine performs the pure splice on file content. Each element of
// the working slice keeps its line terminator, mirroring a full-file
// read/modify/write.
func spliceLine(content string, lineNumber int, text string) string {
	lines := splitAfterLines(content)

	idx := lineNumber - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(lines) {
		idx = len(lines)
	}

	// Appending after a final line that has no terminator would glue
	// the two lines together; give the old final line its newline back.
	if idx == len(lines) && len(lines) > 0 && !strings.HasSuffix(lines[len(lines)-1], "\n") {
		lines[len(lines)-1] += "\n"
	}

	lines = append(lines, "")
	copy(lines[idx+1:], lines[idx:])
	lines[idx] = text + "\n"

	return strings.Join(lines, "")
}

// splitAfterLines splits content into lines, each keeping its trailing
// newline. A file without a trailing newline yields a final element
// without one; an empty file yields no elements.
func splitAfterLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
