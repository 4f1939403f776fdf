package errors

import (
	"strings"
	"text/template"

	"github.com/mitchellh/go-wordwrap"
	"github.com/pkg/errors"
)

// As is a wrapper around the standard library `errors.As`
func As(err error, target any) bool {
	return errors.As(err, target)
}

// decorate returns a "pretty-printed" error message for end-users.
func decorate(err detailedError) (string, error) {
	t, err2 := template.New("error").Parse(errorTemplate)
	if err2 != nil {
		return "", NewInternalError("unable to parse error template: %s", err2)
	}

	vars := templateVariables{
		Title:       err.Error(),
		Description: wordwrap.WrapString(err.Description(), 80),
		Resolution:  wordwrap.WrapString(err.Resolution(), 80),
		Type:        err.Type(),
	}

	if validationErr := vars.Validate(); validationErr != nil {
		return "", validationErr
	}

	var buf strings.Builder
	if renderErr := t.Execute(&buf, vars); renderErr != nil {
		return "", NewInternalError("unable to render error template: %s", renderErr)
	}

	return buf.String(), nil
}

// Is is a wrapper around the standard library `errors.Is`
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// New returns a plain error with a stack-trace. Prefer one of the categorized constructors where possible.
func New(msg string) error {
	return errors.New(msg)
}

// WithDecoration returns a generic (i.e. unwrapped / no stack-trace) error, but decorated. Errors without a
// description are returned unchanged.
func WithDecoration(e error) error {
	var err detailedError

	if ok := As(e, &err); !ok {
		return e
	}

	msg, decorationErr := decorate(err)
	if decorationErr != nil {
		return e
	}

	return errors.New(msg)
}

// WithStack adds a stack trace to an error without doing anything further
func WithStack(err error) error {
	return errors.WithStack(err)
}

// Wrap is similar to 'WithStack', but adds a message to the error
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf is similar to 'Wrap', but formats the message
func Wrapf(err error, msg string, a ...any) error {
	return errors.Wrapf(err, msg, a...)
}

// Unwrap unwraps err one level
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
