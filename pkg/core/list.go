package core

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mailmate-tools/texttemplate/pkg/errors"
	"github.com/mailmate-tools/texttemplate/pkg/template"
)

// TemplateInfo describes one template file under the root
type TemplateInfo struct {
	Path        string
	RelPath     string
	Name        string
	Description string
}

// ListTemplates walks the template root and returns every regular,
// non-hidden file with any front matter metadata it declares. Results
// are sorted by relative path.
func ListTemplates(root string) ([]TemplateInfo, error) {
	var templates []TemplateInfo

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info := TemplateInfo{Path: path, Name: name}
		if rel, err := filepath.Rel(root, path); err == nil {
			info.RelPath = rel
		}

		if content, err := os.ReadFile(path); err == nil {
			meta, _ := template.ParseFrontMatter(string(content))
			if meta.Name != "" {
				info.Name = meta.Name
			}
			info.Description = meta.Description
		}

		templates = append(templates, info)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRootInvalid, "failed to list templates under %s", root)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].RelPath < templates[j].RelPath
	})
	return templates, nil
}
