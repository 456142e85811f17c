package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/ingest"
	"github.com/andinopay/nomina/internal/portal/service"
	"github.com/andinopay/nomina/pkg/httpx"
	"github.com/andinopay/nomina/pkg/slogx"
)

// UploadHandler accepts a payroll file, runs the ingestion pipeline, and
// stores the resulting roster record under the uploading account.
type UploadHandler struct {
	RosterService *service.RosterService

	// MaxUploadBytes caps the request body. Zero means no cap.
	MaxUploadBytes int64
}

// ServeHTTP handles POST /api/rosters/upload
//
//	@Summary		Upload Payroll File
//	@Description	Parses an uploaded CSV, XLS or XLSX file, infers the monetary-total column, sums it, and stores a pending roster record for the uploading account.
//	@Tags			Rosters
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file	formData	file			true	"Payroll file (.csv, .xls or .xlsx)"
//	@Success		201		{object}	domain.Roster	"stored record with parsed rows and computed total"
//	@Failure		400		{object}	StatusResponse	"missing file or unreadable spreadsheet"
//	@Failure		401		{object}	StatusResponse	"missing or invalid token"
//	@Failure		413		{object}	StatusResponse	"file exceeds the upload size cap"
//	@Failure		500		{object}	StatusResponse	"storage failure"
//	@Router			/api/rosters/upload [post].
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "Archivo demasiado grande")
			return
		}
		writeError(w, http.StatusBadRequest, "Archivo requerido en el campo 'file'")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "Archivo demasiado grande")
			return
		}
		log.Error("read upload", "error", err, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	uploader := domain.Account{
		Username: httpx.UsernameFromContext(ctx),
	}
	if claims, ok := httpx.ClaimsFromContext(ctx); ok {
		uploader.DisplayName = claims.Name
	}

	rec, err := ingest.FromUpload(data, header.Filename, uploader)
	if err != nil {
		if errors.Is(err, ingest.ErrParse) {
			writeError(w, http.StatusBadRequest, "No se pudo leer el archivo")
			return
		}
		log.Error("ingest upload", "error", err, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, "Failed to process upload")
		return
	}

	stored, err := h.RosterService.Create(ctx, rec)
	if err != nil {
		log.Error("store upload", "error", err, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, "Failed to save roster")
		return
	}

	log.Info("roster uploaded",
		"id", stored.ID,
		"contractor", stored.Contractor,
		"filename", stored.Filename,
		"rows", stored.RowCount,
		"total", stored.TotalAmount,
	)
	httpx.WriteJSON(w, http.StatusCreated, stored)
}

// isTooLarge detects the MaxBytesReader limit error, which the multipart
// parser may rewrap without %w.
func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr) ||
		strings.Contains(err.Error(), "request body too large")
}
