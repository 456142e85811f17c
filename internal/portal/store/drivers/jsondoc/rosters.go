package jsondoc

import (
	"context"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/store"
)

type rostersRepo struct {
	s *Store
}

func (r *rostersRepo) load() []domain.Roster {
	return readDoc(r.s, rostersFile, []domain.Roster{})
}

func (r *rostersRepo) List(_ context.Context) ([]domain.Roster, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.load(), nil
}

func (r *rostersRepo) ListByContractor(_ context.Context, contractor string) ([]domain.Roster, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Always a JSON array on the wire, even with zero matches.
	out := []domain.Roster{}
	for _, rec := range r.load() {
		if rec.Contractor == contractor {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *rostersRepo) Get(_ context.Context, id string) (domain.Roster, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.load() {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.Roster{}, store.ErrNotFound
}

func (r *rostersRepo) Create(_ context.Context, rec domain.Roster) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rosters := append(r.load(), rec)
	return writeDoc(r.s, rostersFile, rosters)
}

func (r *rostersRepo) Update(_ context.Context, rec domain.Roster) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rosters := r.load()
	for i := range rosters {
		if rosters[i].ID == rec.ID {
			rosters[i] = rec
			return writeDoc(r.s, rostersFile, rosters)
		}
	}
	return store.ErrNotFound
}

func (r *rostersRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rosters := r.load()
	for i := range rosters {
		if rosters[i].ID == id {
			rosters = append(rosters[:i], rosters[i+1:]...)
			return writeDoc(r.s, rostersFile, rosters)
		}
	}
	return store.ErrNotFound
}
