package backoffice

import (
	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCredentials = "INVALID_CREDENTIALS"
	TextCodeSessionExpired     = "SESSION_EXPIRED"
	TextCodeNotAuthenticated   = "NOT_AUTHENTICATED"
	TextCodeNotAuthorized      = "NOT_AUTHORIZED"
	TextCodeUserNotFound       = "USER_NOT_FOUND"
	TextCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	TextCodeDuplicateTelephone = "DUPLICATE_TELEPHONE"
	TextCodeRemoteUnavailable  = "REMOTE_UNAVAILABLE"
)

// ErrInvalidCredentials is returned when the backend rejects an email and
// password pair.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrSessionExpired is returned when the persisted token is past its expiry.
var ErrSessionExpired = errors.New("session expired", errors.CategoryAuth).
	WithTextCode(TextCodeSessionExpired).
	WithCode(errors.CodeUnauthorized)

// ErrNotAuthenticated is returned when an operation requires a session and
// none is present.
var ErrNotAuthenticated = errors.New("not authenticated", errors.CategoryAuth).
	WithTextCode(TextCodeNotAuthenticated).
	WithCode(errors.CodeUnauthorized)

// ErrNotAuthorized is returned when the principal's role does not permit the
// requested operation. Navigation surfaces this as a redirect, never as a
// dialog.
var ErrNotAuthorized = errors.New("role not permitted", errors.CategoryAuthz).
	WithTextCode(TextCodeNotAuthorized).
	WithCode(errors.CodeForbidden)

// ErrUserNotFound is returned when a user id cannot be resolved.
var ErrUserNotFound = errors.New("user not found", errors.CategoryNotFound).
	WithTextCode(TextCodeUserNotFound).
	WithCode(errors.CodeNotFound)

// ErrDuplicateEmail is returned when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered", errors.CategoryConflict).
	WithTextCode(TextCodeDuplicateEmail).
	WithCode(errors.CodeConflict)

// ErrDuplicateTelephone is returned when the telephone is already registered.
var ErrDuplicateTelephone = errors.New("telephone already registered", errors.CategoryConflict).
	WithTextCode(TextCodeDuplicateTelephone).
	WithCode(errors.CodeConflict)

// ErrRemoteUnavailable is returned for transport failures and 5xx responses.
// Callers keep the last good view and surface the message.
var ErrRemoteUnavailable = errors.New("remote service unavailable", errors.CategoryInternal).
	WithTextCode(TextCodeRemoteUnavailable).
	WithCode(errors.CodeInternal)

// IsInvalidCredentials will check for rejected credentials
func IsInvalidCredentials(err error) bool {
	return hasTextCode(err, TextCodeInvalidCredentials)
}

// IsNotFound will check for unresolved resource ids
func IsNotFound(err error) bool {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.Category == errors.CategoryNotFound
}

// IsValidation will check for field-level validation failures
func IsValidation(err error) bool {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.Category == errors.CategoryValidation
}

// IsConflict will check for duplicate resource conflicts
func IsConflict(err error) bool {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.Category == errors.CategoryConflict
}

// IsRemote will check for transport or server failures
func IsRemote(err error) bool {
	return hasTextCode(err, TextCodeRemoteUnavailable)
}

func hasTextCode(err error, code string) bool {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == code
}
