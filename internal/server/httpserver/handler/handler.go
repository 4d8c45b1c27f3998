package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yndnr/hhbook/internal/core/domain"
	"github.com/yndnr/hhbook/internal/core/service"
	"github.com/yndnr/hhbook/internal/telemetry/logger"
)

// maxBodyBytes bounds request bodies; documents are small.
const maxBodyBytes = 32 << 20

// Handler serves the /api/v1 routes.
type Handler struct {
	svc    *service.Service
	logger *slog.Logger
}

// New creates a new Handler backed by svc.
func New(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Routes registers the API routes on r.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/document", func(r chi.Router) {
		r.Post("/load", h.handleLoadDocument)
		r.Post("/save", h.handleSaveDocument)
	})

	r.Route("/backups", func(r chi.Router) {
		r.Get("/", h.handleListBackups)
		r.Post("/", h.handleCreateBackup)
		r.Delete("/", h.handleDeleteBackup)
		r.Post("/prune", h.handlePruneBackups)
		r.Post("/restore", h.handleRestoreBackup)
		r.Post("/checkpoint", h.handleCheckpoint)
	})

	r.Route("/files", func(r chi.Router) {
		r.Post("/validate", h.handleValidatePath)
		r.Get("/info", h.handleFileInfo)
		r.Post("/mkdir", h.handleCreateDirectory)
	})

	r.Get("/system", h.handleSystemInfo)
	r.Get("/version", h.handleVersion)
}

// writeJSON writes a JSON response with standard envelope format.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	requestID := logger.RequestIDFromContext(r.Context())
	writeEnvelope(w, status, NewResponse(requestID, data), h.logger)
}

// writeError writes an error response with standard envelope format.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	requestID := logger.RequestIDFromContext(r.Context())
	w.Header().Set("X-Error-Code", code)
	writeEnvelope(w, status, NewErrorResponse(requestID, code, message, details), h.logger)
}

func writeEnvelope(w http.ResponseWriter, status int, resp *Response, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("failed to encode response", "error", err)
	}
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		var details any
		if de.Details != "" {
			details = de.Details
		}
		h.writeError(w, r, errorCodeToHTTPStatus(de.Code), de.Code, de.Message, details)
		return
	}

	logger.L(r.Context()).Error("internal error", "error", err)
	h.writeError(w, r, http.StatusInternalServerError, domain.ErrInternal.Code, domain.ErrInternal.Message, nil)
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.ErrFormat.Code:
		return http.StatusUnsupportedMediaType
	case domain.ErrParse.Code:
		return http.StatusUnprocessableEntity
	case domain.ErrNotFound.Code:
		return http.StatusNotFound
	case domain.ErrInvalidPath.Code, domain.ErrValidation.Code, domain.ErrBadRequest.Code:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.ErrBadRequest.WithDetails("request body is empty")
		}
		return domain.ErrBadRequest.Wrap(err)
	}
	return nil
}

// requireParam returns a required string field or a bad request error.
func requireParam(name, value string) error {
	if value == "" {
		return domain.ErrBadRequest.WithDetails(fmt.Sprintf("%s is required", name))
	}
	return nil
}
