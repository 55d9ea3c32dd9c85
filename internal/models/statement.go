package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType classifies how a statement moves money.
type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// Valid reports whether t is one of the known operation kinds.
func (t OperationType) Valid() bool {
	return t == OperationDeposit || t == OperationWithdraw
}

// Statement is a single immutable ledger record for a user.
// Once appended it is never updated or deleted.
type Statement struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        OperationType   `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
