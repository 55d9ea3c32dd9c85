package memory

import (
	"context"
	"sync"

	"github.com/sheikh-saqib/statement-ledger-service/internal/interfaces"
	"github.com/sheikh-saqib/statement-ledger-service/internal/models"
)

// MemoryStatementStore is an in-memory implementation of
// interfaces.StatementStore. Statements live in a slice in append
// order, which doubles as creation order.
type MemoryStatementStore struct {
	mu         sync.Mutex
	statements []models.Statement
}

func NewMemoryStatementStore() *MemoryStatementStore {
	return &MemoryStatementStore{
		statements: make([]models.Statement, 0),
	}
}

// SaveStatement appends a statement. An append either happens fully or
// not at all; in memory it cannot partially fail.
func (m *MemoryStatementStore) SaveStatement(ctx context.Context, statement models.Statement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.statements = append(m.statements, statement)
	return nil
}

func (m *MemoryStatementStore) GetStatementByID(ctx context.Context, id string) (models.Statement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, statement := range m.statements {
		if statement.ID == id {
			return statement, nil
		}
	}
	return models.Statement{}, models.ErrStatementNotFound
}

// GetStatementsByUser returns a copy of the user's statements so callers
// cannot mutate internal state.
func (m *MemoryStatementStore) GetStatementsByUser(ctx context.Context, userID string) ([]models.Statement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]models.Statement, 0)
	for _, statement := range m.statements {
		if statement.UserID == userID {
			result = append(result, statement)
		}
	}
	return result, nil
}

// Compile-time check: ensure MemoryStatementStore implements StatementStore
var _ interfaces.StatementStore = (*MemoryStatementStore)(nil)
