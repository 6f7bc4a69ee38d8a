// Package apperrors defines the sentinel errors the repositories and
// usecases surface. Handlers map them to HTTP statuses at the boundary.
package apperrors

import "errors"

var (
	ErrTouristNotFound    = errors.New("tourist not found")
	ErrAlertNotFound      = errors.New("alert not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrDuplicateIdentity  = errors.New("tourist with this identity already exists")
	ErrInvalidCredentials = errors.New("invalid digital ID or password")
	ErrInvalidOTP         = errors.New("invalid OTP")
)
