// Package errs defines the error kinds shared across sitefx packages.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies an Error.
type Kind int

const (
	Internal Kind = iota
	InvalidArgument
	NotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case NotFound:
		return "not found"
	default:
		return "internal"
	}
}

// Error represents an error in the system.
type Error struct {
	Kind     Kind   `json:"kind"`
	Message  string `json:"message"`
	Err      error  `json:"-"`
	FuncName string `json:"-"`
	FileName string `json:"-"`
}

// New constructs an error of the given kind, recording the caller.
func New(kind Kind, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Kind:     kind,
		Message:  err.Error(),
		Err:      err,
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == kind
}

// /////////////////////////////////////////////////////////////////////////////////////////////

// FieldError is used to indicate an error with a specific config field.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
}

// FieldErrors represents a collection of field errors.
type FieldErrors []FieldError

// NewFieldsError creates a fields error.
func NewFieldsError(field string, err error) error {
	return FieldErrors{
		{
			Field: field,
			Err:   err.Error(),
		},
	}
}

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	d, err := json.Marshal(fe)
	if err != nil {
		return err.Error()
	}
	return string(d)
}

// Fields returns the fields that failed validation
func (fe FieldErrors) Fields() map[string]string {
	m := make(map[string]string)
	for _, fld := range fe {
		m[fld.Field] = fld.Err
	}
	return m
}

// IsFieldErrors checks if an error of type FieldErrors exists.
func IsFieldErrors(err error) bool {
	var fe FieldErrors
	return errors.As(err, &fe)
}

// GetFieldErrors returns a copy of the FieldErrors pointer.
func GetFieldErrors(err error) FieldErrors {
	var fe FieldErrors
	if !errors.As(err, &fe) {
		return nil
	}
	return fe
}
