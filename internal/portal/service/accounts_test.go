package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/store"
	"github.com/andinopay/nomina/internal/portal/store/drivers/jsondoc"
)

func newAccountService(t *testing.T) *AccountService {
	t.Helper()

	st, err := jsondoc.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	return &AccountService{Store: st}
}

func TestSeedPopulatesDefaultAccounts(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	accounts, err := svc.Store.Accounts().List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 4)
	require.Equal(t, domain.RoleAdmin, accounts["admin"].Role)
	require.Equal(t, domain.RoleContractor, accounts["contratista1"].Role)

	// Seeding again must not clobber operator changes.
	require.NoError(t, svc.Upsert(ctx, "admin", "newpass", domain.RoleAdmin, "Administrador"))
	require.NoError(t, svc.Seed(ctx))

	a, err := svc.Store.Accounts().Get(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, "newpass", a.Password)
}

func TestListRedactsPasswords(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	accounts, err := svc.List(ctx)
	require.NoError(t, err)
	for username, a := range accounts {
		require.Equal(t, PasswordPlaceholder, a.Password, "password leaked for %s", username)
	}
}

func TestUpsertValidation(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	tests := []struct {
		name                        string
		username, password, display string
		role                        domain.Role
	}{
		{"missing username", "", "pw", "Name", domain.RoleContractor},
		{"missing password", "user", "", "Name", domain.RoleContractor},
		{"missing display name", "user", "pw", "", domain.RoleContractor},
		{"missing role", "user", "pw", "Name", ""},
		{"unknown role", "user", "pw", "Name", "supervisor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Upsert(ctx, tt.username, tt.password, tt.role, tt.display)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpsertOverwrites(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, "contratista9", "first", domain.RoleContractor, "Empresa Uno"))
	require.NoError(t, svc.Upsert(ctx, "contratista9", "second", domain.RoleContractor, "Empresa Dos"))

	a, err := svc.Store.Accounts().Get(ctx, "contratista9")
	require.NoError(t, err)
	require.Equal(t, "second", a.Password)
	require.Equal(t, "Empresa Dos", a.DisplayName)
}

func TestDeleteProtectsSuperAdmin(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	require.ErrorIs(t, svc.Delete(ctx, "admin"), ErrForbidden)

	// Still there.
	_, err := svc.Store.Accounts().Get(ctx, "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "contratista3"))
	require.ErrorIs(t, svc.Delete(ctx, "contratista3"), store.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "nobody"), store.ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	t.Run("valid credentials", func(t *testing.T) {
		a, err := svc.Authenticate(ctx, "contratista1", "contra123")
		require.NoError(t, err)
		require.Equal(t, domain.RoleContractor, a.Role)
		require.Equal(t, "Constructora Norte SpA", a.DisplayName)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "contratista1", "contra124")
		require.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost", "contra123")
		require.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("comparison is exact", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "contratista1", " contra123")
		require.ErrorIs(t, err, ErrAuthFailed)
	})
}
