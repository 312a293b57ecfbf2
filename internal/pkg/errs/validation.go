package errs

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries a human message plus per-field reasons. It is the
// shape request validation produces before any command is built.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{}}
}

func NewValidationErrorWithFields(message string, fields map[string]string) *ValidationError {
	if fields == nil {
		fields = map[string]string{}
	}
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValueIsInvalid
}
