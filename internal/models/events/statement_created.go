package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopicStatementCreated is the topic statement append events are published to.
const TopicStatementCreated = "statement.created"

type StatementCreated struct {
	StatementID string          `json:"statement_id"`
	UserID      string          `json:"user_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
