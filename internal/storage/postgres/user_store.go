package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sheikh-saqib/statement-ledger-service/internal/interfaces"
	"github.com/sheikh-saqib/statement-ledger-service/internal/models"
)

type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{
		db: db,
	}
}

// Migrate creates the users table if it is missing.
func (p *PostgresUserStore) Migrate(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		password   BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`

	_, err := p.db.ExecContext(ctx, query)
	return err
}

func (p *PostgresUserStore) SaveUser(ctx context.Context, user models.User) error {
	const query = `INSERT INTO users (id, name, email, password, created_at)
	VALUES ($1,$2,$3,$4,$5)`

	_, err := p.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Password, user.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return models.ErrEmailTaken
	}
	return err
}

func (p *PostgresUserStore) GetUserByID(ctx context.Context, id string) (models.User, error) {
	const query = `SELECT id, name, email, password, created_at FROM users WHERE id = $1`
	return p.getUser(ctx, query, id)
}

func (p *PostgresUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT id, name, email, password, created_at FROM users WHERE email = $1`
	return p.getUser(ctx, query, email)
}

func (p *PostgresUserStore) getUser(ctx context.Context, query string, arg any) (models.User, error) {
	var user models.User
	err := p.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

var _ interfaces.UserStore = (*PostgresUserStore)(nil)
