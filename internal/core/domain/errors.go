package domain

import "errors"

var (
	// ErrBadAmount means the caller asked to withdraw zero or a negative amount.
	// This is a contract violation, not an insufficient-funds decline.
	ErrBadAmount = errors.New("withdrawal amount must be > 0")

	// ErrNegativeOpening means someone tried to open an account in debt.
	ErrNegativeOpening = errors.New("opening balance cannot be negative")
)
