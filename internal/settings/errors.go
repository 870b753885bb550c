package settings

import (
	"sort"
	"strings"
)

// Messages shown next to the offending form field.
const (
	CronLimitMessage     = "The limit of orders to import must be a positive integer number or empty."
	SourceMessage        = "The billing profile source must be one of: shipping_information, custom."
	CustomAddressMessage = "The custom billing address is malformed."
)

// FieldError is a validation failure of a single form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors maps field names to their error message.
// A submission with any validation error is never saved.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	errs := v.Errors()
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return "invalid settings: " + strings.Join(parts, "; ")
}

// Errors returns one FieldError per field, sorted by field name.
func (v ValidationErrors) Errors() []*FieldError {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	errs := make([]*FieldError, len(fields))
	for i, f := range fields {
		errs[i] = &FieldError{Field: f, Message: v[f]}
	}
	return errs
}

// Field returns the error of a single field, nil if it is valid.
func (v ValidationErrors) Field(name string) error {
	msg, ok := v[name]
	if !ok {
		return nil
	}
	return &FieldError{Field: name, Message: msg}
}

// PersistenceError is returned when valid settings could not be saved to the
// configuration store. It is never retried.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "failed to save settings: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
