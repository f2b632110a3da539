// Package fielderrs maps API validation failures onto the form fields that
// caused them, so commands can print one message next to each offending
// input instead of a single opaque error.
package fielderrs

import (
	"errors"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

// DefaultGeneralMessage is shown when the server provides no message at all.
const DefaultGeneralMessage = "unexpected error"

// Errors holds per-field messages plus one optional general message. The
// zero value is not ready to use; call New.
type Errors struct {
	fields  map[string]string
	general string
}

func New() *Errors {
	return &Errors{fields: make(map[string]string)}
}

// Clear drops all field and general errors.
func (e *Errors) Clear() {
	e.fields = make(map[string]string)
	e.general = ""
}

// ClearField drops the error for a single field.
func (e *Errors) ClearField(field string) {
	delete(e.fields, field)
}

// SetFromError replaces the current state with errors derived from err. A
// validation error with details populates the field map; any other failure
// becomes a general message, falling back to DefaultGeneralMessage when the
// server supplied none.
func (e *Errors) SetFromError(err error) {
	e.Clear()

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == client.CodeValidation && len(apiErr.Details) > 0 {
			for _, detail := range apiErr.Details {
				e.fields[detail.Field] = detail.Message
			}
			return
		}
		if apiErr.Message != "" {
			e.general = apiErr.Message
			return
		}
	}

	e.general = DefaultGeneralMessage
}

// SetField records a message for one field, for client-side validation.
func (e *Errors) SetField(field, message string) {
	e.fields[field] = message
}

// FieldError returns the message for a field, if any.
func (e *Errors) FieldError(field string) (string, bool) {
	message, ok := e.fields[field]
	return message, ok
}

// HasFieldError reports whether a field has an error.
func (e *Errors) HasFieldError(field string) bool {
	_, ok := e.fields[field]
	return ok
}

// HasAny reports whether any field-level error is set.
func (e *Errors) HasAny() bool {
	return len(e.fields) > 0
}

// General returns the general error message, empty when none is set.
func (e *Errors) General() string {
	return e.general
}

// Fields returns a copy of the field-to-message map.
func (e *Errors) Fields() map[string]string {
	out := make(map[string]string, len(e.fields))
	for field, message := range e.fields {
		out[field] = message
	}
	return out
}
