package template

import (
	"strings"

	"github.com/mailmate-tools/texttemplate/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Meta is the optional metadata a template can declare in a YAML front
// matter block. It is display-only: `tt list` shows it, insertion
// strips it.
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

const frontMatterDelimiter = "---"

// ParseFrontMatter splits template content into metadata and body. The
// front matter is a YAML block delimited by `---` lines at the very
// start of the file. Content without a front matter block, or with one
// that does not parse, is returned whole as the body: metadata must
// never block an insertion.
func ParseFrontMatter(content string) (Meta, string) {
	var meta Meta

	rest, found := strings.CutPrefix(content, frontMatterDelimiter+"\n")
	if !found {
		return meta, content
	}

	block, body, found := strings.Cut(rest, "\n"+frontMatterDelimiter+"\n")
	if !found {
		return meta, content
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		logger := logging.GetLogger("template.frontmatter")
		logger.Warn().Err(err).Msg("Malformed front matter, using file verbatim")
		return Meta{}, content
	}

	return meta, body
}
