package account

import (
	"fmt"

	"github.com/amirasaad/bankdesk/pkg/domain"
	"github.com/amirasaad/bankdesk/pkg/money"
	"github.com/shopspring/decimal"
)

// Kind tags the withdrawal policy an account runs under.
type Kind string

// Supported account kinds.
const (
	KindSavings  Kind = "savings"
	KindChecking Kind = "checking"
)

// Label is the display name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindSavings:
		return "Savings"
	case KindChecking:
		return "Checking"
	default:
		return string(k)
	}
}

// Policy decides whether a withdrawal may proceed. Only the field matching
// Kind is meaningful: WithdrawalCap for savings, OverdraftLimit for checking.
type Policy struct {
	Kind           Kind
	WithdrawalCap  decimal.Decimal
	OverdraftLimit decimal.Decimal
}

// SavingsPolicy caps every single withdrawal and never lets the balance go
// below zero. withdrawalCap must be positive.
func SavingsPolicy(withdrawalCap decimal.Decimal) (Policy, error) {
	if !withdrawalCap.IsPositive() {
		return Policy{}, fmt.Errorf("%w: withdrawal cap must be greater than zero", domain.ErrInvalidArgument)
	}
	return Policy{Kind: KindSavings, WithdrawalCap: withdrawalCap}, nil
}

// CheckingPolicy lets the balance go negative down to -limit. limit must not
// be negative.
func CheckingPolicy(limit decimal.Decimal) (Policy, error) {
	if limit.IsNegative() {
		return Policy{}, fmt.Errorf("%w: overdraft limit cannot be negative", domain.ErrInvalidArgument)
	}
	return Policy{Kind: KindChecking, OverdraftLimit: limit}, nil
}

// Allows reports whether amount may be withdrawn from balance.
func (p Policy) Allows(balance, amount decimal.Decimal) bool {
	switch p.Kind {
	case KindSavings:
		return amount.LessThanOrEqual(balance) && amount.LessThanOrEqual(p.WithdrawalCap)
	case KindChecking:
		return balance.Sub(amount).GreaterThanOrEqual(p.OverdraftLimit.Neg())
	default:
		return false
	}
}

func (p Policy) String() string {
	switch p.Kind {
	case KindSavings:
		return "Withdrawal cap: " + money.Format(p.WithdrawalCap)
	case KindChecking:
		return "Overdraft: " + money.Format(p.OverdraftLimit)
	default:
		return "unknown policy"
	}
}
