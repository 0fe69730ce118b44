// Package apierr carries service-layer errors that map onto HTTP
// responses. Services return *Error with the status the handler should
// write (400 bad input, 401 missing identity, 404 unknown lesson or
// language, 409 duplicate account); anything else reaching the handler
// layer becomes a generic 500.
package apierr

import "fmt"

// Error pairs an HTTP status with a stable machine code and the
// underlying cause. The cause's message is safe to show to clients.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}
