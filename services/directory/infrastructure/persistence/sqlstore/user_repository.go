package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/database"
	directorydomain "github.com/ghuser/orderdesk/services/directory/domain"
	"github.com/ghuser/orderdesk/services/directory/domain/models"
	"github.com/ghuser/orderdesk/services/directory/infrastructure/persistence/sqlstore/db"
)

// UserRepository implements repositories.UserRepository against PostgreSQL or SQLite.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given database.
func NewUserRepository(database *database.Database) *UserRepository {
	return &UserRepository{db: database}
}

// Save persists a new User. Returns ErrEmailTaken on unique constraint violations.
func (r *UserRepository) Save(ctx context.Context, u *models.User) error {
	err := db.New(r.db.Conn()).InsertUser(ctx, db.InsertUserParams{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         roleToNull(u.Role),
		CreatedAt:    u.CreatedAt,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return directorydomain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a User by ID. Returns ErrUserNotFound if not found.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row, err := db.New(r.db.Conn()).GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directorydomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return rowToUser(row), nil
}

// GetByEmail retrieves a User by normalized email. Returns ErrUserNotFound if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row, err := db.New(r.db.Conn()).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directorydomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return rowToUser(row), nil
}

// List returns every user ordered by full name.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := db.New(r.db.Conn()).ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	users := make([]*models.User, len(rows))
	for i, row := range rows {
		users[i] = rowToUser(row)
	}
	return users, nil
}

// Update persists changes to an existing User.
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	n, err := db.New(r.db.Conn()).UpdateUser(ctx, db.UpdateUserParams{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         roleToNull(u.Role),
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return directorydomain.ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return directorydomain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := db.New(r.db.Conn()).DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return directorydomain.ErrUserNotFound
	}
	return nil
}

func roleToNull(role auth.Role) sql.NullString {
	return sql.NullString{String: string(role), Valid: role != ""}
}

// rowToUser maps a db.DirectoryUser to a domain models.User.
func rowToUser(row db.DirectoryUser) *models.User {
	return &models.User{
		ID:           row.ID,
		FullName:     row.FullName,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         auth.Role(row.Role.String),
		CreatedAt:    row.CreatedAt,
	}
}
