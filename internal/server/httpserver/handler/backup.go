package handler

import (
	"net/http"
)

// handleCreateBackup handles POST /backups.
func (h *Handler) handleCreateBackup(w http.ResponseWriter, r *http.Request) {
	var req CreateBackupRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if err := requireParam("path", req.Path); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	path, err := h.svc.CreateBackup(r.Context(), req.Path, req.Document)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, CreateBackupResponse{BackupPath: path})
}

// handleListBackups handles GET /backups?directory=&stem=.
func (h *Handler) handleListBackups(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dir, stem := query.Get("directory"), query.Get("stem")
	if err := requireParam("directory", dir); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	infos, err := h.svc.ListBackups(r.Context(), dir, stem)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, infos)
}

// handlePruneBackups handles POST /backups/prune. Pruning never fails,
// so the response always carries the counts.
func (h *Handler) handlePruneBackups(w http.ResponseWriter, r *http.Request) {
	var req PruneBackupsRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if err := requireParam("directory", req.Directory); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	result := h.svc.PruneBackups(r.Context(), req.Directory, req.Stem, req.KeepCount)
	h.writeJSON(w, r, http.StatusOK, result)
}

// handleRestoreBackup handles POST /backups/restore.
func (h *Handler) handleRestoreBackup(w http.ResponseWriter, r *http.Request) {
	var req RestoreBackupRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if err := requireParam("backup_path", req.BackupPath); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if err := requireParam("target_path", req.TargetPath); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if err := h.svc.RestoreBackup(r.Context(), req.BackupPath, req.TargetPath); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, nil)
}

// handleDeleteBackup handles DELETE /backups?path=.
func (h *Handler) handleDeleteBackup(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if err := requireParam("path", path); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if err := h.svc.DeleteBackup(r.Context(), path); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, nil)
}

// handleCheckpoint handles POST /backups/checkpoint: a snapshot followed
// by a prune to the document's backup_count, if auto_backup is enabled.
func (h *Handler) handleCheckpoint(w http.ResponseWriter, r *http.Request) {
	var req CreateBackupRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if err := requireParam("path", req.Path); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	result, err := h.svc.Checkpoint(r.Context(), req.Path, req.Document)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, result)
}
