package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the service.
const (
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeNotFound             = "NOT_FOUND"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeTokenExpired         = "TOKEN_EXPIRED"
	CodeStoreUnavailable     = "STORE_UNAVAILABLE"
	CodeInternalError        = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFound(resource string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusBadRequest)
}

func NewAuthenticationFailed(message string) error {
	return NewDomainError(CodeAuthenticationFailed, message, http.StatusUnauthorized)
}

// NewTokenExpired tags expiry rejections so callers can tell "log in again"
// apart from a malformed or forged credential.
func NewTokenExpired() error {
	return NewDomainError(CodeTokenExpired, "token has expired", http.StatusUnauthorized)
}

// NewStoreUnavailable wraps a backing-store failure. The message stays
// generic; the wrapped cause is for logs only and never leaves the process.
func NewStoreUnavailable(err error) error {
	return &DomainError{
		Code:       CodeStoreUnavailable,
		Message:    "storage temporarily unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err carries the given DomainError code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
