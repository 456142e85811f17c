package store

import (
	"context"
	"errors"

	"github.com/andinopay/nomina/internal/portal/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (jsondoc,
// sqlite) implement this. The portal keeps exactly two resources — the
// account mapping and the roster sequence — so there is no transaction
// surface: writes are whole-record (or whole-document) with last-write-wins
// semantics under a single-writer assumption.
type Store interface {
	Accounts() Accounts
	Rosters() Rosters

	// ApplyMigrations prepares the backing storage. A no-op for drivers
	// whose documents are self-describing.
	ApplyMigrations() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Accounts interface {
	// List returns the full account mapping keyed by username, passwords
	// included. Redaction is the service layer's job.
	List(ctx context.Context) (map[string]domain.Account, error)

	// Get returns a single account by username.
	Get(ctx context.Context, username string) (domain.Account, error)

	// Upsert inserts or overwrites the account keyed by its username.
	// No diffing, no partial update.
	Upsert(ctx context.Context, a domain.Account) error

	// Delete removes the account. Protection of the built-in admin is
	// enforced above this layer.
	Delete(ctx context.Context, username string) error

	// IsEmpty reports whether any accounts exist (drives seeding).
	IsEmpty(ctx context.Context) (bool, error)
}

type Rosters interface {
	// List returns all roster records in storage order.
	List(ctx context.Context) ([]domain.Roster, error)

	// ListByContractor returns the records owned by the given contractor
	// username, preserving storage order.
	ListByContractor(ctx context.Context, contractor string) ([]domain.Roster, error)

	// Get returns a single record by id.
	Get(ctx context.Context, id string) (domain.Roster, error)

	// Create appends a new record (id is provided by the caller via ULID).
	Create(ctx context.Context, r domain.Roster) error

	// Update replaces the stored record with the same id wholesale.
	Update(ctx context.Context, r domain.Roster) error

	// Delete removes the record by id.
	Delete(ctx context.Context, id string) error
}
