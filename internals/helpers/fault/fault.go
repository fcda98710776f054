package fault

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)

// Fault = error service-layer yang membawa status HTTP + pesan untuk user.
type Fault struct {
	Status  int
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Fault) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// Unwrap allows errors.Is and errors.As to work.
func (e *Fault) Unwrap() error {
	return e.Err
}

func NotFound(msg string) error {
	return &Fault{Status: http.StatusNotFound, Message: msg, Err: ErrNotFound}
}

func Conflict(msg string) error {
	return &Fault{Status: http.StatusConflict, Message: msg, Err: ErrConflict}
}

func Forbidden(msg string) error {
	return &Fault{Status: http.StatusForbidden, Message: msg, Err: ErrForbidden}
}

func BadRequest(msg string) error {
	return &Fault{Status: http.StatusBadRequest, Message: msg}
}

// Validation = 422 dengan detail per field (boleh nil).
func Validation(msg string, fields map[string][]string) error {
	return &Fault{Status: http.StatusUnprocessableEntity, Message: msg, Fields: fields, Err: ErrValidation}
}

func Internal(msg string, err error) error {
	return &Fault{Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// As mengambil *Fault dari rantai error.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func IsClientError(err error) bool {
	f, ok := As(err)
	return ok && f.Status >= 400 && f.Status < 500
}

// Upstream: kegagalan kolaborator eksternal (502), atau 503 bila belum dikonfigurasi.
func Upstream(msg string, err error, configured bool) error {
	status := http.StatusBadGateway
	if !configured {
		status = http.StatusServiceUnavailable
	}
	return &Fault{Status: status, Message: msg, Err: err}
}
