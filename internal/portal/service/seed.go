package service

import (
	"context"
	"fmt"

	"github.com/andinopay/nomina/internal/portal/domain"
)

// defaultAccounts are created on first start so the portal is usable out of
// the box: the built-in administrator and three contractor companies.
var defaultAccounts = []domain.Account{
	{Username: "admin", Password: "admin123", Role: domain.RoleAdmin, DisplayName: "Administrador"},
	{Username: "contratista1", Password: "contra123", Role: domain.RoleContractor, DisplayName: "Constructora Norte SpA"},
	{Username: "contratista2", Password: "contra123", Role: domain.RoleContractor, DisplayName: "Servicios Integrales Ltda"},
	{Username: "contratista3", Password: "contra123", Role: domain.RoleContractor, DisplayName: "Mantención Industrial SA"},
}

// Seed creates the default accounts when the account store is empty. It is
// a no-op on an already-populated store.
func (s *AccountService) Seed(ctx context.Context) error {
	empty, err := s.Store.Accounts().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	if !empty {
		return nil
	}

	for _, a := range defaultAccounts {
		if err := s.Store.Accounts().Upsert(ctx, a); err != nil {
			return fmt.Errorf("seed account %q: %w", a.Username, err)
		}
	}
	return nil
}
