package interfaces

import (
	"context"

	"github.com/sheikh-saqib/statement-ledger-service/internal/models"
)

// UserStore holds account-holder profiles. Lookups report a miss with
// models.ErrUserNotFound; SaveUser reports a duplicate email with
// models.ErrEmailTaken.
type UserStore interface {
	SaveUser(ctx context.Context, user models.User) error
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}
