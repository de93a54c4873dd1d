package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"craftdeck/internal/document"
	"craftdeck/internal/geometry"
	"craftdeck/internal/imgfilter"
	"craftdeck/internal/overlay"
)

// Task type constants keep queue producers and consumers in agreement.
const (
	TypeImageExport = "export:image"
	TypePDFExport   = "export:pdf"
)

// ImageExportPayload snapshots everything the worker needs to rasterize an
// image session: the source reference, the final overlay and filter state,
// and the on-screen bounds the overlays were authored against.
type ImageExportPayload struct {
	ExportID      uint                  `json:"export_id"`
	SessionID     string                `json:"session_id"`
	SourceURL     string                `json:"source_url"`
	Filters       imgfilter.State       `json:"filters"`
	Overlays      []overlay.TextOverlay `json:"overlays"`
	ScreenBounds  geometry.Bounds       `json:"screen_bounds"`
	Filename      string                `json:"filename"`
	CorrelationID string                `json:"correlation_id"`
}

// PDFExportPayload snapshots a document session for paginated rendering.
// Exactly one of Resume/Card is set, matching the session's category.
type PDFExportPayload struct {
	ExportID      uint                   `json:"export_id"`
	SessionID     string                 `json:"session_id"`
	Resume        *document.Resume       `json:"resume,omitempty"`
	Card          *document.BusinessCard `json:"card,omitempty"`
	Filename      string                 `json:"filename"`
	CorrelationID string                 `json:"correlation_id"`
}

// NewImageExportTask wraps the payload in an asynq task.
func NewImageExportTask(p ImageExportPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeImageExport, payload), nil
}

// NewPDFExportTask wraps the payload in an asynq task.
func NewPDFExportTask(p PDFExportPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePDFExport, payload), nil
}
