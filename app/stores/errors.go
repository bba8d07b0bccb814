package stores

import "errors"

var (
	// ErrNotFound is returned when an operation targets a record that does
	// not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned by Register when another account already
	// uses the email. The comparison is a case-sensitive exact match.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned by Login on any mismatch. It does
	// not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
