// Package template handles template file content: recipient
// placeholder substitution and the optional metadata front matter.
package template

import (
	"os"
	"strings"

	"github.com/mailmate-tools/texttemplate/pkg/paths"
)

// Placeholder tokens recognized in template text. Matching is literal
// and case-sensitive; nothing else in the text is interpreted.
const (
	TokenFirstName = "[[TO=firstname]]"
	TokenFullName  = "[[TO=fullname]]"
)

// Recipient carries the substitution values for a single message
type Recipient struct {
	FirstName string
	FullName  string
}

// RecipientFromEnv builds a Recipient from the host application's
// environment variables. Unset variables yield empty strings, which
// substitute to nothing.
func RecipientFromEnv() Recipient {
	return Recipient{
		FirstName: os.Getenv(paths.EnvToFirstName),
		FullName:  os.Getenv(paths.EnvToFullName),
	}
}

// Substitute replaces every occurrence of the recognized placeholder
// tokens in text with the recipient's values. Unrecognized bracketed
// tags pass through verbatim.
func Substitute(text string, recipient Recipient) string {
	text = strings.ReplaceAll(text, TokenFirstName, recipient.FirstName)
	text = strings.ReplaceAll(text, TokenFullName, recipient.FullName)
	return text
}
