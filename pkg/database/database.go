// Package database opens the relational store behind every repository and
// provides the unit-of-work helper (WithTx) used for multi-row writes.
//
// Two drivers are supported:
//   - pgx    (PostgreSQL via github.com/jackc/pgx/v5/stdlib) for every real deployment
//   - sqlite (modernc.org/sqlite, pure Go) for local development and store tests
//
// Queries are written with '?' placeholders and rebound to the driver's syntax
// by the DBTX returned from Conn and WithTx.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/logger"
)

// Dialect names the SQL flavour of the open database. Values match goose dialect names.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DBTX is satisfied by *sql.DB and *sql.Tx. Repositories depend on this
// interface so the same query code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Database wraps *sql.DB with the dialect needed to rebind queries.
type Database struct {
	db      *sql.DB
	dialect Dialect
	log     logger.Logger
}

// New opens a connection pool for driver ("pgx" or "sqlite") and verifies it with Ping.
func New(ctx context.Context, driver, url string, log logger.Logger) (*Database, error) {
	switch driver {
	case config.DriverPostgres:
		return openPostgres(ctx, url, log)
	case config.DriverSQLite:
		return openSQLite(ctx, url, log)
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}
}

func openPostgres(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("database: open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Database{db: db, dialect: DialectPostgres, log: log}, nil
}

func openSQLite(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("sqlite", SQLiteDSN(url))
	if err != nil {
		return nil, fmt.Errorf("database: open sqlite: %w", err)
	}

	// Single writer; also keeps ":memory:" databases on one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Database{db: db, dialect: DialectSQLite, log: log}, nil
}

// sqlitePragmas are applied by the driver to every new connection.
var sqlitePragmas = []string{"foreign_keys(1)", "busy_timeout(5000)"}

// SQLiteDSN appends the connection pragmas to url as _pragma query parameters.
func SQLiteDSN(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	var b strings.Builder
	b.WriteString(url)
	for _, p := range sqlitePragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(p)
		sep = "&"
	}
	return b.String()
}

func ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// DB returns the underlying *sql.DB (migrations, health checks).
func (d *Database) DB() *sql.DB {
	return d.db
}

// Dialect reports which SQL flavour the pool speaks.
func (d *Database) Dialect() Dialect {
	return d.dialect
}

// Conn returns a DBTX for reads and single-statement writes outside a transaction.
func (d *Database) Conn() DBTX {
	return rebinder{conn: d.db, dialect: d.dialect}
}

// WithTx runs fn inside a transaction. The transaction commits only when fn
// returns nil; any error or panic rolls it back, so callers never observe a
// partially applied write.
func (d *Database) WithTx(ctx context.Context, fn func(tx DBTX) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			d.rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			d.rollback(ctx, tx)
		}
	}()

	if err = fn(rebinder{conn: tx, dialect: d.dialect}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("database: commit tx: %w", err)
	}
	return nil
}

func (d *Database) rollback(ctx context.Context, tx *sql.Tx) {
	if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
		d.log.ErrorContext(ctx, "database: rollback failed", "error", rbErr)
	}
}

// Ping checks database connectivity (satisfies httpx.HealthChecker).
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}

// Rebind rewrites '?' placeholders into the dialect's bind syntax.
// PostgreSQL gets $1..$n; SQLite accepts '?' natively.
func Rebind(dialect Dialect, query string) string {
	if dialect != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// rebinder adapts a *sql.DB or *sql.Tx so callers always write '?' placeholders.
type rebinder struct {
	conn    DBTX
	dialect Dialect
}

func (r rebinder) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.conn.ExecContext(ctx, Rebind(r.dialect, query), args...)
}

func (r rebinder) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.conn.QueryContext(ctx, Rebind(r.dialect, query), args...)
}

func (r rebinder) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return r.conn.QueryRowContext(ctx, Rebind(r.dialect, query), args...)
}
