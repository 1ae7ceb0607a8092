package services

import "errors"

// ValidationError reports a missing or empty required field. The message is
// shown to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrAccountNotFound is returned when no account matches the email.
	ErrAccountNotFound = errors.New("no account found with this email")
	// ErrInvalidOrExpired covers both a wrong code and a lapsed one; the
	// two cases are never distinguished to the caller.
	ErrInvalidOrExpired = errors.New("invalid or expired OTP")
	// ErrOTPIssue means the code could not be persisted.
	ErrOTPIssue = errors.New("failed to generate OTP")
	// ErrCredentialUpdate means the new password hash could not be stored.
	ErrCredentialUpdate = errors.New("failed to update password")
	// ErrPersistence is any other datastore failure; detail is logged
	// server-side only.
	ErrPersistence = errors.New("server error")
)
