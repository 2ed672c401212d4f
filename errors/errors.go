package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ProfileNotFound     = HttpError{http.StatusNotFound, errors.New("profile not found")}
	RecordNotFound      = HttpError{http.StatusNotFound, errors.New("record not found")}
	AccessDenied        = HttpError{http.StatusForbidden, errors.New("access denied")}
	EmptyPatch          = HttpError{http.StatusBadRequest, errors.New("empty patch")}
	BadRequest          = HttpError{http.StatusBadRequest, errors.New("bad request")}
	Duplicate           = HttpError{http.StatusConflict, errors.New("duplicate")}
	ConstraintViolation = HttpError{http.StatusUnprocessableEntity, errors.New("constraint violation")}
	Unauthorized        = HttpError{http.StatusUnauthorized, errors.New("unauthorized")}
	InternalServerError = HttpError{http.StatusInternalServerError, errors.New("internal server error")}
)

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}

// ValidationError reports the first domain rule a payload violates. Field is
// the wire name of the offending field. It unwraps to ConstraintViolation so
// transport code can map it without matching message text.
type ValidationError struct {
	Field  string
	Reason string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

func (v ValidationError) Unwrap() error {
	return ConstraintViolation
}

func Validation(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}
