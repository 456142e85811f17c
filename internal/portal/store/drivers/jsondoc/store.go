// Package jsondoc persists the portal's two resources as plain JSON
// documents on disk: a mapping document for accounts and a sequence document
// for roster records. This matches the layout the portal has always used, so
// existing data directories keep working.
package jsondoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/andinopay/nomina/internal/portal/store"
)

const (
	usersFile   = "users.json"
	rostersFile = "rosters.json"
)

type Store struct {
	dir    string
	logger *slog.Logger

	// Writes are whole-document read-modify-write cycles; the mutex makes
	// the single-writer assumption hold within the process.
	mu sync.Mutex
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsondoc: create data dir: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}, nil
}

func (s *Store) Accounts() store.Accounts { return &accountsRepo{s: s} }
func (s *Store) Rosters() store.Rosters   { return &rostersRepo{s: s} }

// ApplyMigrations is a no-op: the documents are self-describing.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Ping(_ context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

func (s *Store) Close() error { return nil }

// readDoc loads the named document. An absent or unparseable file yields the
// default; parse failures are logged, never surfaced — a corrupt document
// must not take the portal down.
func readDoc[T any](s *Store, name string, def T) T {
	path := filepath.Join(s.dir, name)

	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Error("jsondoc: read document", "path", path, "error", err)
		}
		return def
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		s.logger.Error("jsondoc: parse document, falling back to default", "path", path, "error", err)
		return def
	}
	return v
}

// writeDoc overwrites the named document wholesale.
func writeDoc(s *Store, name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsondoc: encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		s.logger.Error("jsondoc: write document", "path", path, "error", err)
		return fmt.Errorf("jsondoc: write %s: %w", name, err)
	}
	return nil
}
