// Package engine binds the embedded SQL engine: an in-memory SQLite
// database reached through a single pooled connection. The engine never
// touches disk itself - durability is the service layer's job, via
// Serialize snapshots handed to the kvstore.
package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// Engine is the live engine handle. All SQL for a session executes against
// one in-memory database.
//
// CRITICAL: an in-memory SQLite database is scoped to its connection, so
// the pool is pinned to exactly one open connection with unlimited
// lifetime. A second connection would see a different, empty database.
type Engine struct {
	db *sqlx.DB
}

// Open creates an engine over a fresh, empty in-memory database.
func Open() (*Engine, error) {
	return open(nil)
}

// OpenSnapshot creates an engine whose initial memory image is the given
// serialized snapshot, as produced by Serialize.
func OpenSnapshot(image []byte) (*Engine, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("open snapshot: empty image")
	}
	return open(image)
}

func open(image []byte) (*Engine, error) {
	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open engine: %w", err)
	}

	// Single writer, single reader, one database. Lifetime limits stay at
	// zero (unlimited) so the pool never recycles the connection and drops
	// the memory image with it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect engine: %w", err)
	}

	e := &Engine{db: db}

	if image != nil {
		if err := e.deserialize(context.Background(), image); err != nil {
			db.Close()
			return nil, fmt.Errorf("hydrate engine: %w", err)
		}
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	return e, nil
}

// Close releases the engine connection. The in-memory database is gone
// after this; callers wanting durability must Serialize first.
func (e *Engine) Close() error {
	if e.db == nil {
		return nil
	}
	return e.db.Close()
}

// DB exposes the underlying sqlx handle for queries the wrappers below
// don't cover. Use with caution.
func (e *Engine) DB() *sqlx.DB {
	return e.db
}

// Exec runs a parameterized statement.
func (e *Engine) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return e.db.ExecContext(ctx, query, args...)
}

// Select runs a query and scans all rows into dest (a pointer to a slice).
func (e *Engine) Select(ctx context.Context, dest any, query string, args ...any) error {
	return e.db.SelectContext(ctx, dest, query, args...)
}

// Get runs a query expected to yield one row and scans it into dest.
// Returns sql.ErrNoRows when nothing matches.
func (e *Engine) Get(ctx context.Context, dest any, query string, args ...any) error {
	return e.db.GetContext(ctx, dest, query, args...)
}

// Serialize exports the full binary image of the in-memory database.
// The returned bytes are a complete snapshot: feeding them back through
// OpenSnapshot reconstructs an identical database.
func (e *Engine) Serialize(ctx context.Context) ([]byte, error) {
	var image []byte
	err := e.withRawConn(ctx, func(conn *sqlite3.SQLiteConn) error {
		b, err := conn.Serialize("")
		if err != nil {
			return err
		}
		// Serialize hands back memory owned by the driver; copy before the
		// connection returns to the pool.
		image = make([]byte, len(b))
		copy(image, b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("serialize engine: %w", err)
	}
	return image, nil
}

// deserialize replaces the connection's database with the given image.
func (e *Engine) deserialize(ctx context.Context, image []byte) error {
	return e.withRawConn(ctx, func(conn *sqlite3.SQLiteConn) error {
		return conn.Deserialize(image, "")
	})
}

// withRawConn runs fn against the raw sqlite3 driver connection. Because
// the pool holds exactly one connection, this is the same connection every
// query uses.
func (e *Engine) withRawConn(ctx context.Context, fn func(*sqlite3.SQLiteConn) error) error {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return conn.Raw(func(driverConn any) error {
		sc, ok := driverConn.(*sqlite3.SQLiteConn)
		if !ok {
			return fmt.Errorf("unexpected driver connection type %T", driverConn)
		}
		return fn(sc)
	})
}
