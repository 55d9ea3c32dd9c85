package interfaces

import (
	"context"

	"github.com/sheikh-saqib/statement-ledger-service/internal/models"
)

// StatementStore is the durable append-only collection of statements.
// Implementations must make SaveStatement all-or-nothing: a failed write
// leaves no partial record behind.
type StatementStore interface {
	SaveStatement(ctx context.Context, statement models.Statement) error
	GetStatementByID(ctx context.Context, id string) (models.Statement, error)
	// GetStatementsByUser returns the user's full history in creation order.
	GetStatementsByUser(ctx context.Context, userID string) ([]models.Statement, error)
}
