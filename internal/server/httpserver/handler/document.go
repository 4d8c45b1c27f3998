package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/yndnr/hhbook/internal/core/domain"
	"github.com/yndnr/hhbook/internal/storage/codec"
)

// handleLoadDocument handles POST /document/load.
func (h *Handler) handleLoadDocument(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if err := requireParam("path", req.Path); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	doc, err := h.svc.LoadDocument(r.Context(), req.Path)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, doc)
}

// handleSaveDocument handles POST /document/save.
func (h *Handler) handleSaveDocument(w http.ResponseWriter, r *http.Request) {
	var req SaveDocumentRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if err := requireParam("path", req.Path); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	payload, err := payloadFromJSON(req.Data)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if err := h.svc.SaveDocument(r.Context(), req.Path, payload); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, nil)
}

// payloadFromJSON turns a JSON string into RawText and a JSON object into
// a document payload.
func payloadFromJSON(data json.RawMessage) (codec.Payload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, domain.ErrBadRequest.WithDetails("data is required")
	}

	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil, domain.ErrBadRequest.Wrap(err)
		}
		return codec.RawText(text), nil
	}

	doc, err := codec.Unmarshal(trimmed)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return codec.DocumentPayload{Doc: doc}, nil
}
