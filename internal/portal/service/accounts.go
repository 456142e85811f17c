package service

import (
	"context"
	"fmt"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/store"
)

// PasswordPlaceholder replaces stored passwords whenever accounts leave the
// service layer.
const PasswordPlaceholder = "********"

// AccountService is the account registry: admin-managed logins for the
// portal, one of which is the protected built-in administrator.
type AccountService struct {
	Store store.Store
}

// List returns the account mapping with passwords redacted.
func (s *AccountService) List(ctx context.Context) (map[string]domain.Account, error) {
	accounts, err := s.Store.Accounts().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	for username, a := range accounts {
		a.Password = PasswordPlaceholder
		accounts[username] = a
	}
	return accounts, nil
}

// Upsert inserts or overwrites an account. All four fields are required;
// there is no partial update — last write wins.
func (s *AccountService) Upsert(ctx context.Context, username, password string, role domain.Role, displayName string) error {
	if username == "" || password == "" || displayName == "" || !role.Valid() {
		return ErrValidation
	}

	return s.Store.Accounts().Upsert(ctx, domain.Account{
		Username:    username,
		Password:    password,
		Role:        role,
		DisplayName: displayName,
	})
}

// Delete removes an account. The built-in administrator is protected
// regardless of who asks.
func (s *AccountService) Delete(ctx context.Context, username string) error {
	if username == domain.SuperAdminUsername {
		return ErrForbidden
	}
	return s.Store.Accounts().Delete(ctx, username)
}

// Authenticate looks up the account and compares the password verbatim.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (domain.Account, error) {
	a, err := s.Store.Accounts().Get(ctx, username)
	if err != nil {
		return domain.Account{}, ErrAuthFailed
	}
	if a.Password != password {
		return domain.Account{}, ErrAuthFailed
	}
	return a, nil
}
