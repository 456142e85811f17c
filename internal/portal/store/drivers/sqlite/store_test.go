package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/store"
	"github.com/andinopay/nomina/internal/portal/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "portal.db")
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestAccountsCRUD(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	empty, err := s.Accounts().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	acc := domain.Account{
		Username:    "admin",
		Password:    "admin123",
		Role:        domain.RoleAdmin,
		DisplayName: "Administrador",
	}
	require.NoError(t, s.Accounts().Upsert(ctx, acc))

	// Upsert overwrites, last write wins.
	acc.DisplayName = "Administrador General"
	require.NoError(t, s.Accounts().Upsert(ctx, acc))

	got, err := s.Accounts().Get(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, "Administrador General", got.DisplayName)

	all, err := s.Accounts().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, s.Accounts().Delete(ctx, "admin"))
	require.ErrorIs(t, s.Accounts().Delete(ctx, "admin"), store.ErrNotFound)
	_, err = s.Accounts().Get(ctx, "admin")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRostersCRUD(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	var row domain.Row
	row.Set("Nombre", domain.StringValue("Juan Pérez"))
	row.Set("Total", domain.NumberValue(450000))

	rec := domain.Roster{
		ID:             "01HZZZZZZZZZZZZZZZZZZZZZZZ",
		Filename:       "nomina_marzo.xlsx",
		Contractor:     "contratista1",
		ContractorName: "Constructora Norte SpA",
		UploadedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:         domain.StatusPending,
		TotalAmount:    450000,
		RowCount:       1,
		Rows:           []domain.Row{row},
	}
	require.NoError(t, s.Rosters().Create(ctx, rec))

	got, err := s.Rosters().Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.UploadedAt, got.UploadedAt)
	require.Equal(t, rec.TotalAmount, got.TotalAmount)
	require.Len(t, got.Rows, 1)
	require.Equal(t, []string{"Nombre", "Total"}, got.Rows[0].Keys())

	got.Status = domain.StatusAccredited
	got.ReceivedAmount = "449990.50"
	require.NoError(t, s.Rosters().Update(ctx, got))

	back, err := s.Rosters().Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusAccredited, back.Status)
	require.Equal(t, "449990.50", back.ReceivedAmount)

	require.ErrorIs(t, s.Rosters().Update(ctx, domain.Roster{ID: "missing"}), store.ErrNotFound)

	byContractor, err := s.Rosters().ListByContractor(ctx, "contratista1")
	require.NoError(t, err)
	require.Len(t, byContractor, 1)

	require.NoError(t, s.Rosters().Delete(ctx, rec.ID))
	require.ErrorIs(t, s.Rosters().Delete(ctx, rec.ID), store.ErrNotFound)
}

func TestRostersListEmptyIsNotNil(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.Rosters().List(ctx)
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)

	mine, err := s.Rosters().ListByContractor(ctx, "contratista1")
	require.NoError(t, err)
	require.NotNil(t, mine)
	require.Empty(t, mine)
}
