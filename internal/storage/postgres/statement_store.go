package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sheikh-saqib/statement-ledger-service/internal/interfaces"
	"github.com/sheikh-saqib/statement-ledger-service/internal/models"
)

type PostgresStatementStore struct {
	db *sql.DB
}

func NewPostgresStatementStore(db *sql.DB) *PostgresStatementStore {
	return &PostgresStatementStore{
		db: db,
	}
}

// Migrate creates the statements table if it is missing.
func (p *PostgresStatementStore) Migrate(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS statements (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		type        TEXT NOT NULL,
		amount      NUMERIC NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_statements_user_id ON statements (user_id)`

	_, err := p.db.ExecContext(ctx, query)
	return err
}

// SaveStatement writes the record in a single INSERT, so a failed write
// leaves nothing behind.
func (p *PostgresStatementStore) SaveStatement(ctx context.Context, statement models.Statement) error {
	const query = `INSERT INTO statements (id, user_id, type, amount, description, created_at)
	VALUES ($1,$2,$3,$4,$5,$6)`

	_, err := p.db.ExecContext(ctx, query,
		statement.ID, statement.UserID, string(statement.Type),
		statement.Amount, statement.Description, statement.CreatedAt)
	return err
}

func (p *PostgresStatementStore) GetStatementByID(ctx context.Context, id string) (models.Statement, error) {
	const query = `SELECT id, user_id, type, amount, description, created_at FROM statements
	WHERE id = $1`

	var statement models.Statement
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&statement.ID,
		&statement.UserID,
		&statement.Type,
		&statement.Amount,
		&statement.Description,
		&statement.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Statement{}, models.ErrStatementNotFound
	}
	if err != nil {
		return models.Statement{}, err
	}
	return statement, nil
}

func (p *PostgresStatementStore) GetStatementsByUser(ctx context.Context, userID string) ([]models.Statement, error) {
	const query = `SELECT id, user_id, type, amount, description, created_at FROM statements
	WHERE user_id = $1
	ORDER BY created_at ASC`

	rows, err := p.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statements := make([]models.Statement, 0)
	for rows.Next() {
		var statement models.Statement
		if err := rows.Scan(
			&statement.ID,
			&statement.UserID,
			&statement.Type,
			&statement.Amount,
			&statement.Description,
			&statement.CreatedAt,
		); err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return statements, nil
}

var _ interfaces.StatementStore = (*PostgresStatementStore)(nil)
