package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/service"
	"github.com/andinopay/nomina/internal/portal/store"
	"github.com/andinopay/nomina/pkg/httpx"
	"github.com/andinopay/nomina/pkg/slogx"
)

// RostersHandler handles the roster record endpoints. Contractors only see
// and create their own records; administrators see everything and own the
// payment-tracking mutations.
type RostersHandler struct {
	RosterService *service.RosterService
}

// HandleList handles GET /api/rosters
//
//	@Summary		List Roster Records
//	@Description	Returns roster records in upload order. Contractors get only their own uploads; administrators get all of them and may filter with ?contractor=.
//	@Tags			Rosters
//	@Produce		json
//	@Security		BearerAuth
//	@Param			contractor	query		string			false	"Filter by contractor username (admin only)"
//	@Success		200			{array}		domain.Roster	"roster records"
//	@Failure		401			{object}	StatusResponse	"missing or invalid token"
//	@Failure		500			{object}	StatusResponse	"storage failure"
//	@Router			/api/rosters [get].
func (h *RostersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Contractors are pinned to their own records regardless of the query.
	contractor := r.URL.Query().Get("contractor")
	if httpx.RoleFromContext(ctx) == string(domain.RoleContractor) {
		contractor = httpx.UsernameFromContext(ctx)
	}

	records, err := h.RosterService.List(ctx, contractor)
	if err != nil {
		log.Error("list rosters", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list rosters")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, records)
}

// HandleCreate handles POST /api/rosters
//
//	@Summary		Create Roster Record
//	@Description	Appends a roster record from a pre-parsed JSON body. Contractors can only create records under their own username; the usual path for them is the upload endpoint.
//	@Tags			Rosters
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		domain.Roster	true	"Roster record; id, uploadedAt and status are assigned when absent"
//	@Success		201		{object}	domain.Roster	"stored record"
//	@Failure		400		{object}	StatusResponse	"malformed body or missing required field"
//	@Failure		401		{object}	StatusResponse	"missing or invalid token"
//	@Failure		500		{object}	StatusResponse	"storage failure"
//	@Router			/api/rosters [post].
func (h *RostersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var rec domain.Roster
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if httpx.RoleFromContext(ctx) == string(domain.RoleContractor) {
		rec.Contractor = httpx.UsernameFromContext(ctx)
		if claims, ok := httpx.ClaimsFromContext(ctx); ok {
			rec.ContractorName = claims.Name
		}
	}

	stored, err := h.RosterService.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Filename y contractor son requeridos")
			return
		}
		log.Error("create roster", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save roster")
		return
	}

	log.Info("roster created", "id", stored.ID, "contractor", stored.Contractor)
	httpx.WriteJSON(w, http.StatusCreated, stored)
}

// HandlePatch handles PATCH /api/rosters/{id}
//
//	@Summary		Update Roster Record
//	@Description	Partially updates a record: payment status, supplementary payment fields, or a full row replacement. Absent fields are untouched. Any status may follow any other.
//	@Tags			Rosters
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Roster record ID"
//	@Param			request	body		PatchRosterRequest	true	"Fields to overwrite"
//	@Success		200		{object}	domain.Roster		"updated record"
//	@Failure		400		{object}	StatusResponse		"malformed body or unknown status"
//	@Failure		401		{object}	StatusResponse		"missing or invalid token"
//	@Failure		403		{object}	StatusResponse		"caller is not an administrator"
//	@Failure		404		{object}	StatusResponse		"unknown record"
//	@Failure		500		{object}	StatusResponse		"storage failure"
//	@Router			/api/rosters/{id} [patch].
func (h *RostersHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")

	var req PatchRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	patch := service.RosterPatch{
		Rows:            req.Rows,
		OperationNumber: req.OperationNumber,
		ReceivedAmount:  req.ReceivedAmount,
		ReceiptNumber:   req.ReceiptNumber,
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		patch.Status = &s
	}

	updated, err := h.RosterService.Update(ctx, id, patch)
	switch {
	case err == nil:
		log.Info("roster updated", "id", id)
		httpx.WriteJSON(w, http.StatusOK, updated)
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "Estado inválido")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Nómina no encontrada")
	default:
		log.Error("update roster", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update roster")
	}
}

// HandleDelete handles DELETE /api/rosters/{id}
//
//	@Summary		Delete Roster Record
//	@Description	Removes a roster record by id.
//	@Tags			Rosters
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string			true	"Roster record ID"
//	@Success		200	{object}	StatusResponse	"record deleted"
//	@Failure		401	{object}	StatusResponse	"missing or invalid token"
//	@Failure		403	{object}	StatusResponse	"caller is not an administrator"
//	@Failure		404	{object}	StatusResponse	"unknown record"
//	@Failure		500	{object}	StatusResponse	"storage failure"
//	@Router			/api/rosters/{id} [delete].
func (h *RostersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")

	err := h.RosterService.Delete(ctx, id)
	switch {
	case err == nil:
		log.Info("roster deleted", "id", id)
		writeSuccess(w, "Nómina eliminada")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Nómina no encontrada")
	default:
		log.Error("delete roster", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete roster")
	}
}
