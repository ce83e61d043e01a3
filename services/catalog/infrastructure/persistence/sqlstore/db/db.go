// Package db holds the catalog SQL queries. Statements use '?' placeholders;
// the DBTX handed to New (from database.Database.Conn or WithTx) rebinds them
// for the active dialect.
package db

import "github.com/ghuser/orderdesk/pkg/database"

// Queries runs catalog statements against a connection or transaction.
type Queries struct {
	db database.DBTX
}

// New returns Queries bound to db.
func New(db database.DBTX) *Queries {
	return &Queries{db: db}
}
