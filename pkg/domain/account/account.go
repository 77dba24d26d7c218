package account

import (
	"fmt"
	"strings"

	"github.com/amirasaad/bankdesk/pkg/domain"
	"github.com/amirasaad/bankdesk/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrAmountMustBePositive is returned when a deposit or withdrawal amount is zero or negative.
	ErrAmountMustBePositive = fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidArgument)

	// ErrWithdrawalNotAllowed is returned when the account policy rejects a withdrawal.
	ErrWithdrawalNotAllowed = fmt.Errorf("%w: withdrawal not allowed by the account terms", domain.ErrPolicyViolation)
)

// Account holds a balance, the id of the owning client and the movement log.
// It is an aggregate root: balance and log only change together.
//
// Invariants:
//   - Code and owner id are never blank.
//   - Balance equals the sum of deposits minus the sum of withdrawals in the log.
//   - Every withdrawal satisfied the account policy at the time it was made.
type Account struct {
	code      string
	ownerID   string
	balance   decimal.Decimal
	policy    Policy
	movements []Movement
}

// Builder provides a fluent API for constructing Account instances.
// Exactly one of AsSavings or AsChecking must be called.
type Builder struct {
	code    string
	ownerID string
	policy  *Policy
	err     error
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{}
}

// WithCode sets the unique account code. This is a mandatory field.
func (b *Builder) WithCode(code string) *Builder {
	b.code = code
	return b
}

// WithOwnerID sets the id of the owning client. This is a mandatory field.
func (b *Builder) WithOwnerID(ownerID string) *Builder {
	b.ownerID = ownerID
	return b
}

// AsSavings selects the savings policy with the given per-withdrawal cap.
func (b *Builder) AsSavings(withdrawalCap decimal.Decimal) *Builder {
	p, err := SavingsPolicy(withdrawalCap)
	return b.withPolicy(p, err)
}

// AsChecking selects the checking policy with the given overdraft limit.
func (b *Builder) AsChecking(overdraftLimit decimal.Decimal) *Builder {
	p, err := CheckingPolicy(overdraftLimit)
	return b.withPolicy(p, err)
}

func (b *Builder) withPolicy(p Policy, err error) *Builder {
	switch {
	case b.err != nil:
	case err != nil:
		b.err = err
	case b.policy != nil:
		b.err = fmt.Errorf("%w: account policy already set", domain.ErrInvalidArgument)
	default:
		b.policy = &p
	}
	return b
}

// Build validates the collected fields and returns the Account with a zero
// balance and an empty log.
func (b *Builder) Build() (*Account, error) {
	if b.err != nil {
		return nil, b.err
	}
	code := strings.TrimSpace(b.code)
	if code == "" {
		return nil, fmt.Errorf("%w: account code is required", domain.ErrInvalidArgument)
	}
	ownerID := strings.TrimSpace(b.ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: account owner is required", domain.ErrInvalidArgument)
	}
	if b.policy == nil {
		return nil, fmt.Errorf("%w: account policy is required", domain.ErrInvalidArgument)
	}
	return &Account{
		code:    code,
		ownerID: ownerID,
		balance: decimal.Zero,
		policy:  *b.policy,
	}, nil
}

// NewSavings is a shortcut for a savings account builder chain.
func NewSavings(code, ownerID string, withdrawalCap decimal.Decimal) (*Account, error) {
	return New().WithCode(code).WithOwnerID(ownerID).AsSavings(withdrawalCap).Build()
}

// NewChecking is a shortcut for a checking account builder chain.
func NewChecking(code, ownerID string, overdraftLimit decimal.Decimal) (*Account, error) {
	return New().WithCode(code).WithOwnerID(ownerID).AsChecking(overdraftLimit).Build()
}

// Code returns the unique account code.
func (a *Account) Code() string { return a.code }

// OwnerID returns the id of the owning client.
func (a *Account) OwnerID() string { return a.ownerID }

// Balance returns the current balance. It is negative only for an overdrawn checking account.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Policy returns the withdrawal policy the account runs under.
func (a *Account) Policy() Policy { return a.policy }

// Kind returns the kind of the account policy.
func (a *Account) Kind() Kind { return a.policy.Kind }

// Movements returns a copy of the log in chronological order.
func (a *Account) Movements() []Movement {
	out := make([]Movement, len(a.movements))
	copy(out, a.movements)
	return out
}

// Deposit adds amount to the balance and records it.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	a.balance = a.balance.Add(amount)
	a.movements = append(a.movements, newMovement(MovementDeposit, amount))
	return nil
}

// CanWithdraw reports whether the policy accepts amount against the current balance.
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return amount.IsPositive() && a.policy.Allows(a.balance, amount)
}

// Withdraw subtracts amount from the balance and records it. Nothing changes
// when the amount is invalid or the policy refuses it.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !a.policy.Allows(a.balance, amount) {
		return ErrWithdrawalNotAllowed
	}
	a.balance = a.balance.Sub(amount)
	a.movements = append(a.movements, newMovement(MovementWithdrawal, amount))
	return nil
}

// ChangeOwner reassigns the account. It does not check that the client is
// registered; the bank service does.
func (a *Account) ChangeOwner(ownerID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return fmt.Errorf("%w: new owner is required", domain.ErrInvalidArgument)
	}
	a.ownerID = ownerID
	return nil
}

// IsSettled reports whether the balance is exactly zero.
func (a *Account) IsSettled() bool {
	return a.balance.IsZero()
}

func (a *Account) String() string {
	return fmt.Sprintf("%s #%s | Owner: %s | Balance: %s | %s",
		a.policy.Kind.Label(), a.code, a.ownerID, money.Format(a.balance), a.policy)
}
