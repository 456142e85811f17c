package jsondoc

import (
	"context"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/store"
)

type accountsRepo struct {
	s *Store
}

func (r *accountsRepo) load() map[string]domain.Account {
	users := readDoc(r.s, usersFile, map[string]domain.Account{})
	// The username lives in the document key, not the value.
	for username, a := range users {
		a.Username = username
		users[username] = a
	}
	return users
}

func (r *accountsRepo) List(_ context.Context) (map[string]domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.load(), nil
}

func (r *accountsRepo) Get(_ context.Context, username string) (domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.load()[username]
	if !ok {
		return domain.Account{}, store.ErrNotFound
	}
	return a, nil
}

func (r *accountsRepo) Upsert(_ context.Context, a domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := r.load()
	users[a.Username] = a
	return writeDoc(r.s, usersFile, users)
}

func (r *accountsRepo) Delete(_ context.Context, username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := r.load()
	if _, ok := users[username]; !ok {
		return store.ErrNotFound
	}
	delete(users, username)
	return writeDoc(r.s, usersFile, users)
}

func (r *accountsRepo) IsEmpty(_ context.Context) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return len(r.load()) == 0, nil
}
