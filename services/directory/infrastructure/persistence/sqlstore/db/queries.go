package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const userColumns = `id, full_name, email, password_hash, role, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (DirectoryUser, error) {
	var u DirectoryUser
	err := s.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

const insertUser = `
INSERT INTO users (` + userColumns + `)
VALUES (?, ?, ?, ?, ?, ?)`

type InsertUserParams struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	Role         sql.NullString
	CreatedAt    time.Time
}

func (q *Queries) InsertUser(ctx context.Context, arg InsertUserParams) error {
	_, err := q.db.ExecContext(ctx, insertUser,
		arg.ID, arg.FullName, arg.Email, arg.PasswordHash, arg.Role, arg.CreatedAt)
	return err
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (DirectoryUser, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByID, id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = ?`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (DirectoryUser, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByEmail, email))
}

const listUsers = `SELECT ` + userColumns + ` FROM users ORDER BY full_name, email`

func (q *Queries) ListUsers(ctx context.Context) ([]DirectoryUser, error) {
	rows, err := q.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DirectoryUser
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const updateUser = `
UPDATE users
SET full_name = ?, email = ?, password_hash = ?, role = ?
WHERE id = ?`

type UpdateUserParams struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	Role         sql.NullString
}

// UpdateUser returns the number of affected rows.
func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateUser, arg.FullName, arg.Email, arg.PasswordHash, arg.Role, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteUser = `DELETE FROM users WHERE id = ?`

// DeleteUser returns the number of affected rows.
func (q *Queries) DeleteUser(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
