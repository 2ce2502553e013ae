package accounts

import (
	"errors"
	"net/http"

	"github.com/hongminglow/accounts-be/internal/validation"
)

// Kind classifies a workflow failure.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "auth"
	KindDependency Kind = "dependency"
	KindUnexpected Kind = "unexpected"
)

const (
	msgConflict          = "El email o nombre de usuario ya está registrado"
	msgUserNotFound      = "User not found"
	msgBusinessNotFound  = "Business not found"
	msgIncorrectPassword = "Incorrect password"
	msgServerError       = "Server error"
	msgUnexpected        = "Unexpected error occurred"
	msgLoginSuccessful   = "Login successful"
	msgUserUpdated       = "User updated successfully"
)

// Error is a workflow failure with the status and message a caller sees.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalid(err error) *Error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: verr.Message, Err: err}
	}
	return unexpected(err)
}

func conflict(err error) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusConflict, Message: msgConflict, Err: err}
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// Wrong passwords are a 400, not a 401; clients depend on it.
func incorrectPassword() *Error {
	return &Error{Kind: KindAuth, Status: http.StatusBadRequest, Message: msgIncorrectPassword}
}

func dependency(message string, err error) *Error {
	return &Error{Kind: KindDependency, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// leakyDependency surfaces the underlying error text to the caller.
func leakyDependency(err error) *Error {
	if err == nil || err.Error() == "" {
		return unexpected(err)
	}
	return dependency(err.Error(), err)
}

func unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Status: http.StatusInternalServerError, Message: msgUnexpected, Err: err}
}
