package account

import (
	"fmt"
	"time"

	"github.com/amirasaad/bankdesk/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementKind tells deposits apart from withdrawals.
type MovementKind string

// Movement kinds recorded in an account log.
const (
	MovementDeposit    MovementKind = "Deposit"
	MovementWithdrawal MovementKind = "Withdrawal"
)

// Movement is an immutable ledger entry. Amount is always positive; Kind
// gives its direction.
type Movement struct {
	ID        uuid.UUID
	Kind      MovementKind
	Amount    decimal.Decimal
	CreatedAt time.Time
}

func newMovement(kind MovementKind, amount decimal.Decimal) Movement {
	return Movement{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
}

// Signed returns the amount as it affects the balance.
func (m Movement) Signed() decimal.Decimal {
	if m.Kind == MovementWithdrawal {
		return m.Amount.Neg()
	}
	return m.Amount
}

func (m Movement) String() string {
	return fmt.Sprintf("[%s] %s - %s", m.CreatedAt.Format("2006-01-02 15:04"), m.Kind, money.Format(m.Amount))
}
