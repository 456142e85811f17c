package http

import (
	"net/http"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/pkg/httpx"
)

// StatusResponse is the generic success/failure envelope. Mutations that
// return no payload answer with it, and every error response uses it so
// clients have a single shape to check.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginRequest is the credential pair for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo is the public identity slice of an account: everything except
// the password.
type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// LoginResponse carries the session token and the authenticated identity.
type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// UpsertUserRequest creates or overwrites an account. All fields required.
type UpsertUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// PatchRosterRequest is a partial update of a roster record. Absent fields
// are left untouched; present fields overwrite.
type PatchRosterRequest struct {
	Status          *string       `json:"status,omitempty"`
	Rows            *[]domain.Row `json:"rows,omitempty"`
	OperationNumber *string       `json:"operationNumber,omitempty"`
	ReceivedAmount  *string       `json:"receivedAmount,omitempty"`
	ReceiptNumber   *string       `json:"receiptNumber,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Store  string `json:"store"`
	Signer string `json:"signer"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, StatusResponse{Success: false, Message: message})
}

func writeSuccess(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Success: true, Message: message})
}
