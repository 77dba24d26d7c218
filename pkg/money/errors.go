package money

import "errors"

var (
	// ErrInvalidAmount is returned when a string is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotPositive is returned when an amount must be greater than zero.
	ErrNotPositive = errors.New("amount must be greater than zero")

	// ErrNegativeAmount is returned when an amount must not be below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)
