package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// DirectoryUser mirrors a row of the users table.
type DirectoryUser struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	Role         sql.NullString
	CreatedAt    time.Time
}
