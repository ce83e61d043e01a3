package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/services/directory/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Save inserts a new user. Returns ErrEmailTaken on a duplicate email.
	Save(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns every user ordered by full name.
	List(ctx context.Context) ([]*models.User, error)

	// Update persists name, email, role and password hash changes.
	// Returns ErrUserNotFound if absent and ErrEmailTaken on a duplicate email.
	Update(ctx context.Context, u *models.User) error

	// Delete removes a user. Returns ErrUserNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
