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

// UsersHandler handles the admin-only account management endpoints.
type UsersHandler struct {
	AccountService *service.AccountService
}

// HandleList handles GET /api/users
//
//	@Summary		List Accounts
//	@Description	Returns all accounts keyed by username. Stored passwords are replaced with a placeholder.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	map[string]domain.Account	"accounts keyed by username, passwords redacted"
//	@Failure		401	{object}	StatusResponse				"missing or invalid token"
//	@Failure		403	{object}	StatusResponse				"caller is not an administrator"
//	@Failure		500	{object}	StatusResponse				"storage failure"
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accounts, err := h.AccountService.List(ctx)
	if err != nil {
		log.Error("list accounts", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accounts)
}

// HandleUpsert handles POST /api/users
//
//	@Summary		Create or Replace Account
//	@Description	Inserts or fully overwrites an account. All four fields are required; there is no partial update.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		UpsertUserRequest	true	"Account fields"
//	@Success		200		{object}	StatusResponse		"account saved"
//	@Failure		400		{object}	StatusResponse		"missing field or unknown role"
//	@Failure		401		{object}	StatusResponse		"missing or invalid token"
//	@Failure		403		{object}	StatusResponse		"caller is not an administrator"
//	@Failure		500		{object}	StatusResponse		"storage failure"
//	@Router			/api/users [post].
func (h *UsersHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	err := h.AccountService.Upsert(ctx, req.Username, req.Password, domain.Role(req.Role), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Todos los campos son requeridos")
			return
		}
		log.Error("upsert account", "error", err, "username", req.Username)
		writeError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}

	log.Info("account saved", "username", req.Username, "role", req.Role)
	writeSuccess(w, "Usuario guardado")
}

// HandleDelete handles DELETE /api/users/{username}
//
//	@Summary		Delete Account
//	@Description	Removes an account. The built-in administrator cannot be deleted.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			username	path		string			true	"Account username"
//	@Success		200			{object}	StatusResponse	"account deleted"
//	@Failure		401			{object}	StatusResponse	"missing or invalid token"
//	@Failure		403			{object}	StatusResponse	"protected account"
//	@Failure		404			{object}	StatusResponse	"unknown account"
//	@Failure		500			{object}	StatusResponse	"storage failure"
//	@Router			/api/users/{username} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.PathValue("username")

	err := h.AccountService.Delete(ctx, username)
	switch {
	case err == nil:
		log.Info("account deleted", "username", username)
		writeSuccess(w, "Usuario eliminado")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "No se puede eliminar el administrador")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Usuario no encontrado")
	default:
		log.Error("delete account", "error", err, "username", username)
		writeError(w, http.StatusInternalServerError, "Failed to delete user")
	}
}
