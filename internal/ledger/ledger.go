package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/statement-ledger-service/internal/interfaces"
	"github.com/sheikh-saqib/statement-ledger-service/internal/models"
	"github.com/sheikh-saqib/statement-ledger-service/internal/models/events"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger appends deposit/withdrawal statements for users and answers
// balance and history queries. It owns the one real invariant in the
// system: a user's balance may never go negative.
type Ledger struct {
	statements interfaces.StatementStore
	users      interfaces.UserStore
	publisher  interfaces.EventPublisher // may be nil when no event bus is configured
	logger     *zap.Logger

	muMap map[string]*sync.Mutex // one mutex per user id, serializes that user's writes
	mapMu sync.Mutex             // protects the muMap itself
}

// NewLedger wires the ledger to its stores. publisher may be nil.
func NewLedger(statements interfaces.StatementStore, users interfaces.UserStore, publisher interfaces.EventPublisher, logger *zap.Logger) *Ledger {
	return &Ledger{
		statements: statements,
		users:      users,
		publisher:  publisher,
		logger:     logger,
		muMap:      make(map[string]*sync.Mutex),
	}
}

// Balance is a user's signed total together with the statements it was
// derived from, in creation order.
type Balance struct {
	Statement []models.Statement `json:"statement"`
	Balance   decimal.Decimal    `json:"balance"`
}

func (l *Ledger) getUserLock(userID string) *sync.Mutex {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	if _, exists := l.muMap[userID]; !exists {
		l.muMap[userID] = &sync.Mutex{}
	}
	return l.muMap[userID]
}

// CreateStatement appends one statement for the user. Withdrawals are
// checked against the current balance; the balance read and the append
// happen under the user's lock so two concurrent withdrawals cannot
// both pass a check they jointly violate.
func (l *Ledger) CreateStatement(ctx context.Context, userID string, opType models.OperationType, amount decimal.Decimal, description string) (models.Statement, error) {
	if !opType.Valid() {
		return models.Statement{}, models.ErrInvalidOperationType
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return models.Statement{}, models.ErrAmountNotPositive
	}
	if _, err := l.users.GetUserByID(ctx, userID); err != nil {
		return models.Statement{}, err
	}

	mu := l.getUserLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if opType == models.OperationWithdraw {
		balance, _, err := l.sumStatements(ctx, userID)
		if err != nil {
			return models.Statement{}, err
		}
		if amount.GreaterThan(balance) {
			return models.Statement{}, models.ErrInsufficientFunds
		}
	}

	statement := models.Statement{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        opType,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := l.statements.SaveStatement(ctx, statement); err != nil {
		return models.Statement{}, err
	}

	l.publishCreated(statement)
	return statement, nil
}

// GetBalance returns the user's signed total and full statement history.
func (l *Ledger) GetBalance(ctx context.Context, userID string) (Balance, error) {
	if _, err := l.users.GetUserByID(ctx, userID); err != nil {
		return Balance{}, err
	}

	balance, statements, err := l.sumStatements(ctx, userID)
	if err != nil {
		return Balance{}, err
	}
	return Balance{Statement: statements, Balance: balance}, nil
}

// GetStatementOperation returns one statement scoped to its owner. A
// statement that exists but belongs to someone else looks exactly like
// a missing one.
func (l *Ledger) GetStatementOperation(ctx context.Context, userID, statementID string) (models.Statement, error) {
	if _, err := l.users.GetUserByID(ctx, userID); err != nil {
		return models.Statement{}, err
	}

	statement, err := l.statements.GetStatementByID(ctx, statementID)
	if err != nil {
		return models.Statement{}, err
	}
	if statement.UserID != userID {
		return models.Statement{}, models.ErrStatementNotFound
	}
	return statement, nil
}

// sumStatements re-reads the user's full history and folds it into a
// signed total. Deliberately O(n) per call; there is no cached running
// balance to keep consistent.
func (l *Ledger) sumStatements(ctx context.Context, userID string) (decimal.Decimal, []models.Statement, error) {
	statements, err := l.statements.GetStatementsByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, nil, err
	}

	balance := decimal.Zero
	for _, statement := range statements {
		switch statement.Type {
		case models.OperationDeposit:
			balance = balance.Add(statement.Amount)
		case models.OperationWithdraw:
			balance = balance.Sub(statement.Amount)
		}
	}
	return balance, statements, nil
}

func (l *Ledger) publishCreated(statement models.Statement) {
	if l.publisher == nil {
		return
	}
	event := events.StatementCreated{
		StatementID: statement.ID,
		UserID:      statement.UserID,
		Type:        string(statement.Type),
		Amount:      statement.Amount,
		OccurredAt:  statement.CreatedAt,
	}
	if err := l.publisher.Publish(events.TopicStatementCreated, event); err != nil {
		// the append already succeeded; a bus outage must not look like a ledger error
		l.logger.Warn("failed to publish statement.created event",
			zap.String("statement_id", statement.ID),
			zap.Error(err))
	}
}
