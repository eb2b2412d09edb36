package store

import (
	"errors"
	"fmt"

	"lis-dashboard/internal/validation"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrInvalid    = errors.New("validation failed")
	ErrBadRequest = errors.New("bad request")
)

// Error carries a display message alongside its kind.
type Error struct {
	Kind    error
	Message string
	Fields  []validation.FieldError
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

// NotFound yields "<Label> not found".
func NotFound(label string) error {
	return &Error{Kind: ErrNotFound, Message: label + " not found"}
}

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func BadRequestf(format string, args ...any) error {
	return &Error{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Invalid(fields []validation.FieldError) error {
	return &Error{Kind: ErrInvalid, Message: ErrInvalid.Error(), Fields: fields}
}

// Detail is the value surfaced as the error envelope's detail.
func Detail(err error) any {
	var se *Error
	if errors.As(err, &se) && len(se.Fields) > 0 {
		return se.Fields
	}
	return err.Error()
}
