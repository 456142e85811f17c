package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/store"
	"github.com/andinopay/nomina/internal/portal/store/drivers/jsondoc"
)

func newRosterService(t *testing.T) *RosterService {
	t.Helper()

	st, err := jsondoc.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	return &RosterService{Store: st}
}

func sampleRoster() domain.Roster {
	row := domain.Row{}
	row.Set("Nombre", domain.StringValue("Ana"))
	row.Set("CLP", domain.NumberValue(100))

	return domain.Roster{
		Filename:       "agosto.csv",
		Contractor:     "contratista1",
		ContractorName: "Constructora Norte SpA",
		TotalAmount:    100,
		RowCount:       1,
		Rows:           []domain.Row{row},
	}
}

func TestCreateFillsDefaults(t *testing.T) {
	t.Parallel()

	svc := newRosterService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleRoster())
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.False(t, rec.UploadedAt.IsZero())
	require.Equal(t, domain.StatusPending, rec.Status)

	got, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.ID, got.ID)
	require.Equal(t, "agosto.csv", got.Filename)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	svc := newRosterService(t)
	ctx := context.Background()

	t.Run("missing filename", func(t *testing.T) {
		rec := sampleRoster()
		rec.Filename = ""
		_, err := svc.Create(ctx, rec)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing contractor", func(t *testing.T) {
		rec := sampleRoster()
		rec.Contractor = ""
		_, err := svc.Create(ctx, rec)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("bad status", func(t *testing.T) {
		rec := sampleRoster()
		rec.Status = "approved"
		_, err := svc.Create(ctx, rec)
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestListFiltersByContractor(t *testing.T) {
	t.Parallel()

	svc := newRosterService(t)
	ctx := context.Background()

	first := sampleRoster()
	second := sampleRoster()
	second.Contractor = "contratista2"
	second.ContractorName = "Servicios Integrales Ltda"

	_, err := svc.Create(ctx, first)
	require.NoError(t, err)
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	mine, err := svc.List(ctx, "contratista2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "contratista2", mine[0].Contractor)

	none, err := svc.List(ctx, "contratista3")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	svc := newRosterService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleRoster())
	require.NoError(t, err)

	t.Run("any status may follow any other", func(t *testing.T) {
		for _, s := range []domain.Status{
			domain.StatusPaid, domain.StatusInProgress, domain.StatusAccredited, domain.StatusPending,
		} {
			got, err := svc.UpdateStatus(ctx, rec.ID, s)
			require.NoError(t, err)
			require.Equal(t, s, got.Status)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := svc.UpdateStatus(ctx, rec.ID, domain.StatusPaid)
		require.NoError(t, err)
		again, err := svc.UpdateStatus(ctx, rec.ID, domain.StatusPaid)
		require.NoError(t, err)
		require.Equal(t, first, again)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, rec.ID, "done")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "no-such-id", domain.StatusPaid)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUpdatePartial(t *testing.T) {
	t.Parallel()

	svc := newRosterService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleRoster())
	require.NoError(t, err)

	op := "OP-123"
	got, err := svc.Update(ctx, rec.ID, RosterPatch{OperationNumber: &op})
	require.NoError(t, err)
	require.Equal(t, "OP-123", got.OperationNumber)
	require.Equal(t, domain.StatusPending, got.Status, "absent fields stay untouched")
	require.Equal(t, rec.Rows, got.Rows)

	t.Run("row replacement leaves rowCount alone", func(t *testing.T) {
		replacement := []domain.Row{}
		got, err := svc.Update(ctx, rec.ID, RosterPatch{Rows: &replacement})
		require.NoError(t, err)
		require.Empty(t, got.Rows)
		require.Equal(t, 1, got.RowCount)
		require.Equal(t, "OP-123", got.OperationNumber, "earlier patch survives")
	})

	t.Run("invalid status rejected before writing", func(t *testing.T) {
		bad := domain.Status("shipped")
		amount := "999"
		_, err := svc.Update(ctx, rec.ID, RosterPatch{Status: &bad, ReceivedAmount: &amount})
		require.ErrorIs(t, err, ErrValidation)

		cur, err := svc.Get(ctx, rec.ID)
		require.NoError(t, err)
		require.Empty(t, cur.ReceivedAmount)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, "no-such-id", RosterPatch{OperationNumber: &op})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeleteRoster(t *testing.T) {
	t.Parallel()

	svc := newRosterService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleRoster())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rec.ID))
	_, err = svc.Get(ctx, rec.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, rec.ID), store.ErrNotFound)
}

func TestUploadTimestampPreserved(t *testing.T) {
	t.Parallel()

	svc := newRosterService(t)
	ctx := context.Background()

	rec := sampleRoster()
	rec.UploadedAt = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	got, err := svc.Create(ctx, rec)
	require.NoError(t, err)
	require.Equal(t, rec.UploadedAt, got.UploadedAt)
}
