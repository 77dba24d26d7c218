package dto

import "github.com/shopspring/decimal"

// AccountCreate represents the data needed to open an account. Limit is the
// withdrawal cap for savings and the overdraft limit for checking.
type AccountCreate struct {
	Kind    string          `label:"account type" validate:"required,oneof=savings checking"`
	Code    string          `label:"code" validate:"required,max=20"`
	OwnerID string          `label:"owner ID" validate:"required"`
	Limit   decimal.Decimal `label:"limit"`
}

// AccountOwnerChange represents a request to hand an account to another client.
type AccountOwnerChange struct {
	Code       string `label:"code" validate:"required"`
	NewOwnerID string `label:"new owner ID" validate:"required"`
}
