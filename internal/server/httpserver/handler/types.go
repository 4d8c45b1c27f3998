package handler

import (
	"encoding/json"
	"time"

	"github.com/yndnr/hhbook/internal/core/domain"
)

// Response is the standard API response envelope.
// All JSON responses use this format (except /metrics which uses Prometheus format).
type Response struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// NewResponse creates a success response.
func NewResponse(requestID string, data any) *Response {
	return &Response{
		Code:      "OK",
		Message:   "Success",
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID, code, message string, details any) *Response {
	return &Response{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Details:   details,
	}
}

// PathRequest is the body of requests that name a single path.
type PathRequest struct {
	Path string `json:"path"`
}

// SaveDocumentRequest is the request body for POST /document/save.
//
// Data is either a document object or a JSON string; a string is written
// to the file verbatim (used for CSV exports).
type SaveDocumentRequest struct {
	Path string          `json:"path"`
	Data json.RawMessage `json:"data"`
}

// CreateBackupRequest is the request body for POST /backups and
// POST /backups/checkpoint.
type CreateBackupRequest struct {
	Path     string           `json:"path"`
	Document *domain.Document `json:"document"`
}

// CreateBackupResponse is the response body for POST /backups.
type CreateBackupResponse struct {
	BackupPath string `json:"backup_path"`
}

// PruneBackupsRequest is the request body for POST /backups/prune.
type PruneBackupsRequest struct {
	Directory string `json:"directory"`
	Stem      string `json:"stem"`
	KeepCount int    `json:"keep_count"`
}

// RestoreBackupRequest is the request body for POST /backups/restore.
type RestoreBackupRequest struct {
	BackupPath string `json:"backup_path"`
	TargetPath string `json:"target_path"`
}

// ValidatePathResponse is the response body for POST /files/validate.
type ValidatePathResponse struct {
	Exists bool `json:"exists"`
}

// VersionResponse is the response body for GET /version.
type VersionResponse struct {
	Version string `json:"version"`
}
