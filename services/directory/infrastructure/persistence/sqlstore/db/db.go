// Package db holds the directory SQL queries, written with '?' placeholders.
package db

import "github.com/ghuser/orderdesk/pkg/database"

// Queries runs directory statements against a connection or transaction.
type Queries struct {
	db database.DBTX
}

// New returns Queries bound to db.
func New(db database.DBTX) *Queries {
	return &Queries{db: db}
}
