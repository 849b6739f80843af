package constants

import "net/http"

// CodedError carries the HTTP status the central error handler should
// respond with. Services return these (possibly wrapped) instead of
// mapping statuses in controllers.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized       = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie  = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrInvalidCredentials = NewCodedError(http.StatusUnauthorized, "invalid username or password")
	ErrUsernameTaken      = NewCodedError(http.StatusConflict, "username already exists")
)
