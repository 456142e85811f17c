package service

import (
	"context"
	"fmt"
	"time"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/store"
	"github.com/andinopay/nomina/pkg/idx"
)

// RosterService owns the roster record lifecycle: creation, the four-stage
// payment status, supplementary payment fields, and deletion.
type RosterService struct {
	Store store.Store
}

// RosterPatch is a partial update. Only non-nil fields are applied.
type RosterPatch struct {
	Status          *domain.Status
	Rows            *[]domain.Row
	OperationNumber *string
	ReceivedAmount  *string
	ReceiptNumber   *string
}

// List returns all records in storage order, optionally filtered to a single
// contractor username.
func (s *RosterService) List(ctx context.Context, contractor string) ([]domain.Roster, error) {
	if contractor != "" {
		return s.Store.Rosters().ListByContractor(ctx, contractor)
	}
	return s.Store.Rosters().List(ctx)
}

// Get returns a single record by id.
func (s *RosterService) Get(ctx context.Context, id string) (domain.Roster, error) {
	return s.Store.Rosters().Get(ctx, id)
}

// Create validates and appends a record. Filename and contractor username
// are required; id, upload timestamp and the pending status are assigned
// when the caller didn't (the ingestion pipeline already fills them in).
func (s *RosterService) Create(ctx context.Context, rec domain.Roster) (domain.Roster, error) {
	if rec.Filename == "" || rec.Contractor == "" {
		return domain.Roster{}, ErrValidation
	}

	if rec.ID == "" {
		rec.ID = idx.New().String()
	}
	if rec.UploadedAt.IsZero() {
		rec.UploadedAt = time.Now().UTC()
	}
	if rec.Status == "" {
		rec.Status = domain.StatusPending
	}
	if !rec.Status.Valid() {
		return domain.Roster{}, ErrValidation
	}
	if rec.Rows == nil {
		rec.Rows = []domain.Row{}
	}

	if err := s.Store.Rosters().Create(ctx, rec); err != nil {
		return domain.Roster{}, fmt.Errorf("create roster: %w", err)
	}
	return rec, nil
}

// UpdateStatus overwrites the status unconditionally. Any status may follow
// any other, including the same one — the operation is idempotent.
func (s *RosterService) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Roster, error) {
	if !status.Valid() {
		return domain.Roster{}, ErrValidation
	}

	rec, err := s.Store.Rosters().Get(ctx, id)
	if err != nil {
		return domain.Roster{}, err
	}

	rec.Status = status
	if err := s.Store.Rosters().Update(ctx, rec); err != nil {
		return domain.Roster{}, err
	}
	return rec, nil
}

// Update applies a partial update, leaving absent fields untouched.
// Replacing Rows deliberately does not touch RowCount: the count reflects
// the original upload, and the two may diverge after a manual row edit.
func (s *RosterService) Update(ctx context.Context, id string, patch RosterPatch) (domain.Roster, error) {
	rec, err := s.Store.Rosters().Get(ctx, id)
	if err != nil {
		return domain.Roster{}, err
	}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return domain.Roster{}, ErrValidation
		}
		rec.Status = *patch.Status
	}
	if patch.Rows != nil {
		rec.Rows = *patch.Rows
	}
	if patch.OperationNumber != nil {
		rec.OperationNumber = *patch.OperationNumber
	}
	if patch.ReceivedAmount != nil {
		rec.ReceivedAmount = *patch.ReceivedAmount
	}
	if patch.ReceiptNumber != nil {
		rec.ReceiptNumber = *patch.ReceiptNumber
	}

	if err := s.Store.Rosters().Update(ctx, rec); err != nil {
		return domain.Roster{}, err
	}
	return rec, nil
}

// Delete removes a record by id.
func (s *RosterService) Delete(ctx context.Context, id string) error {
	return s.Store.Rosters().Delete(ctx, id)
}
