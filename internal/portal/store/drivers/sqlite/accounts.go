package sqlite

import (
	"context"
	"database/sql"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/store"
)

type accountsRepo struct {
	db *sql.DB
}

func (r *accountsRepo) List(ctx context.Context) (map[string]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT username, password, role, name FROM accounts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]domain.Account)
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.Username, &a.Password, &a.Role, &a.DisplayName); err != nil {
			return nil, err
		}
		out[a.Username] = a
	}
	return out, rows.Err()
}

func (r *accountsRepo) Get(ctx context.Context, username string) (domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT username, password, role, name FROM accounts WHERE username = ?`,
		username,
	).Scan(&a.Username, &a.Password, &a.Role, &a.DisplayName)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) Upsert(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (username, password, role, name)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET
			password = excluded.password,
			role     = excluded.role,
			name     = excluded.name`,
		a.Username, a.Password, a.Role, a.DisplayName)
	return err
}

func (r *accountsRepo) Delete(ctx context.Context, username string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM accounts WHERE username = ?`, username)
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

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
