package handler

import "net/http"

// handleValidatePath handles POST /files/validate.
func (h *Handler) handleValidatePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	exists, err := h.svc.ValidatePath(r.Context(), req.Path)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, ValidatePathResponse{Exists: exists})
}

// handleFileInfo handles GET /files/info?path=.
func (h *Handler) handleFileInfo(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if err := requireParam("path", path); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	info, err := h.svc.FileInfo(r.Context(), path)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, info)
}

// handleCreateDirectory handles POST /files/mkdir.
func (h *Handler) handleCreateDirectory(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if err := requireParam("path", req.Path); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if err := h.svc.CreateDirectory(r.Context(), req.Path); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, nil)
}
