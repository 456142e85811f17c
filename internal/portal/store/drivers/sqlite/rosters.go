package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/store"
)

type rostersRepo struct {
	db *sql.DB
}

const rosterColumns = `id, filename, contractor, contractor_name, uploaded_at,
	status, total_amount, row_count, rows_json,
	operation_number, received_amount, receipt_number`

func (r *rostersRepo) List(ctx context.Context) ([]domain.Roster, error) {
	return r.query(ctx,
		`SELECT `+rosterColumns+` FROM rosters ORDER BY rowid`)
}

func (r *rostersRepo) ListByContractor(ctx context.Context, contractor string) ([]domain.Roster, error) {
	return r.query(ctx,
		`SELECT `+rosterColumns+` FROM rosters WHERE contractor = ? ORDER BY rowid`,
		contractor)
}

func (r *rostersRepo) query(ctx context.Context, q string, args ...any) ([]domain.Roster, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Always a JSON array on the wire, even with zero matches.
	out := []domain.Roster{}
	for rows.Next() {
		rec, err := scanRoster(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *rostersRepo) Get(ctx context.Context, id string) (domain.Roster, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+rosterColumns+` FROM rosters WHERE id = ?`, id)
	rec, err := scanRoster(row.Scan)
	if err != nil {
		return domain.Roster{}, mapNotFound(err)
	}
	return rec, nil
}

func (r *rostersRepo) Create(ctx context.Context, rec domain.Roster) error {
	rowsJSON, uploadedAt, err := encodeRoster(rec)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO rosters (`+rosterColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Filename, rec.Contractor, rec.ContractorName, uploadedAt,
		rec.Status, rec.TotalAmount, rec.RowCount, rowsJSON,
		rec.OperationNumber, rec.ReceivedAmount, rec.ReceiptNumber)
	return err
}

func (r *rostersRepo) Update(ctx context.Context, rec domain.Roster) error {
	rowsJSON, uploadedAt, err := encodeRoster(rec)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE rosters SET
			filename = ?, contractor = ?, contractor_name = ?, uploaded_at = ?,
			status = ?, total_amount = ?, row_count = ?, rows_json = ?,
			operation_number = ?, received_amount = ?, receipt_number = ?
		WHERE id = ?`,
		rec.Filename, rec.Contractor, rec.ContractorName, uploadedAt,
		rec.Status, rec.TotalAmount, rec.RowCount, rowsJSON,
		rec.OperationNumber, rec.ReceivedAmount, rec.ReceiptNumber,
		rec.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *rostersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rosters WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func encodeRoster(rec domain.Roster) (rowsJSON string, uploadedAt string, err error) {
	if rec.Rows == nil {
		rec.Rows = []domain.Row{}
	}
	b, err := json.Marshal(rec.Rows)
	if err != nil {
		return "", "", fmt.Errorf("sqlite: encode roster rows: %w", err)
	}
	return string(b), rec.UploadedAt.UTC().Format(time.RFC3339Nano), nil
}

func scanRoster(scan func(dest ...any) error) (domain.Roster, error) {
	var (
		rec        domain.Roster
		uploadedAt string
		rowsJSON   string
	)
	err := scan(
		&rec.ID, &rec.Filename, &rec.Contractor, &rec.ContractorName, &uploadedAt,
		&rec.Status, &rec.TotalAmount, &rec.RowCount, &rowsJSON,
		&rec.OperationNumber, &rec.ReceivedAmount, &rec.ReceiptNumber)
	if err != nil {
		return domain.Roster{}, err
	}

	if rec.UploadedAt, err = time.Parse(time.RFC3339Nano, uploadedAt); err != nil {
		return domain.Roster{}, fmt.Errorf("sqlite: parse uploaded_at: %w", err)
	}
	if err := json.Unmarshal([]byte(rowsJSON), &rec.Rows); err != nil {
		return domain.Roster{}, fmt.Errorf("sqlite: decode roster rows: %w", err)
	}
	return rec, nil
}
