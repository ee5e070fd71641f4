// Package core implements the insertion pipeline: resolve the template
// root, let the user pick a template, substitute placeholders, splice
// the result into the message file.
package core

import (
	"os"
	"strconv"

	"github.com/mailmate-tools/texttemplate/pkg/errors"
	"github.com/mailmate-tools/texttemplate/pkg/paths"
	"github.com/mailmate-tools/texttemplate/pkg/template"
)

// EnvInputs are the inputs the host mail application passes through
// the environment.
type EnvInputs struct {
	// TargetPath is the message file being edited
	TargetPath string

	// LineNumber is the 1-based line to insert at
	LineNumber int

	// Recipient carries the placeholder substitution values
	Recipient template.Recipient
}

// ParseEnv reads the host application's environment variables. Both
// MM_EDIT_FILEPATH and MM_LINE_NUMBER are required; the recipient
// variables are optional and default to empty strings.
func ParseEnv() (EnvInputs, error) {
	var inputs EnvInputs

	inputs.TargetPath = os.Getenv(paths.EnvEditFilepath)
	if inputs.TargetPath == "" {
		return inputs, errors.Newf(errors.ErrEnvMissing, "%s must be set in the environment", paths.EnvEditFilepath)
	}

	lineStr := os.Getenv(paths.EnvLineNumber)
	if lineStr == "" {
		return inputs, errors.Newf(errors.ErrEnvMissing, "%s must be set in the environment", paths.EnvLineNumber)
	}

	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return inputs, errors.Wrapf(err, errors.ErrEnvInvalid, "%s must be an integer, got %q", paths.EnvLineNumber, lineStr)
	}
	inputs.LineNumber = line

	inputs.Recipient = template.RecipientFromEnv()
	return inputs, nil
}
