package domain

import "errors"

// Error kinds shared by the ledger. Operations wrap one of these with
// context, so callers should match with errors.Is.
var (
	// ErrInvalidArgument is returned when input to a constructor or an
	// operation is malformed or out of range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateKey is returned when a client id or account code is
	// already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned when a referenced client or account is missing.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a mutation would break referential
	// integrity or a business rule.
	ErrConflict = errors.New("conflict")
	// ErrPolicyViolation is returned when an account's withdrawal policy
	// rejects a withdrawal.
	ErrPolicyViolation = errors.New("policy violation")
)
