package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andinopay/nomina/internal/portal/service"
	"github.com/andinopay/nomina/pkg/httpx"
	"github.com/andinopay/nomina/pkg/jwtx"
	"github.com/andinopay/nomina/pkg/slogx"
)

// LoginHandler exchanges a credential pair for a signed session token.
type LoginHandler struct {
	AccountService *service.AccountService
	Signer         *jwtx.Signer
}

// ServeHTTP handles POST /api/login
//
//	@Summary		Authenticate
//	@Description	Verifies a username/password pair and returns a bearer session token with the account's role and display name.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse	"success, token, user"
//	@Failure		400		{object}	StatusResponse	"malformed request body"
//	@Failure		401		{object}	StatusResponse	"unknown user or wrong password"
//	@Failure		500		{object}	StatusResponse	"token minting failed"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	account, err := h.AccountService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthFailed) {
			// Same answer for unknown user and wrong password.
			writeError(w, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}
		log.Error("authenticate", "error", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := h.Signer.Sign(account.Username, string(account.Role), account.DisplayName)
	if err != nil {
		log.Error("sign session token", "error", err, "username", account.Username)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	log.Info("login", "username", account.Username, "role", account.Role)
	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		User: UserInfo{
			Username: account.Username,
			Role:     string(account.Role),
			Name:     account.DisplayName,
		},
	})
}
