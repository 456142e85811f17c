// Package sqlite is an embedded-database driver for installations that have
// outgrown the flat JSON documents. Same contracts, same semantics; rows are
// kept as a JSON column since the portal never queries inside them.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/andinopay/nomina/internal/portal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// No FK constraints: rosters reference contractors by bare username and
	// deleting an account never cascades to its records.
	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Accounts() store.Accounts { return &accountsRepo{db: s.db} }
func (s *Store) Rosters() store.Rosters   { return &rostersRepo{db: s.db} }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
