package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"craftdeck/internal/api/middleware"
	"craftdeck/internal/database"
	"craftdeck/internal/editor"
	"craftdeck/internal/errcode"
	"craftdeck/internal/storage"
	"craftdeck/internal/tasks"
	"craftdeck/internal/worker"
)

// exportGuardTimeout bounds how long a session's export flag can stay
// set when no completion notification ever arrives.
const exportGuardTimeout = 10 * time.Minute

// ExportHandler enqueues export jobs and serves finished artifacts.
type ExportHandler struct {
	store       *editor.Store
	db          *gorm.DB
	asynqClient *asynq.Client
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
	presignTTL  time.Duration
}

func NewExportHandler(
	store *editor.Store,
	db *gorm.DB,
	asynqClient *asynq.Client,
	storageClient *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	presignTTL time.Duration,
) *ExportHandler {
	return &ExportHandler{
		store:       store,
		db:          db,
		asynqClient: asynqClient,
		storage:     storageClient,
		redisClient: redisClient,
		logger:      logger,
		presignTTL:  presignTTL,
	}
}

type triggerExportRequest struct {
	Screen boundsPayload `json:"screen"`
}

// TriggerExport snapshots the session and enqueues the matching export
// job: raster compositing for image sessions, PDF rendering for document
// sessions. Returns 202; completion arrives over the notify channel.
func (h *ExportHandler) TriggerExport(c *gin.Context) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "session not found")
		return
	}

	var req triggerExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, err.Error())
		return
	}

	if err := session.BeginExport(); err != nil {
		if errors.Is(err, editor.ErrBusy) {
			Conflict(c, "an export is already in progress")
			return
		}
		Internal(c, "failed to start export")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	export, err := h.buildExport(session, req.Screen)
	if err != nil {
		session.EndExport()
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Create(export).Error; err != nil {
		session.EndExport()
		Internal(c, "failed to record export")
		return
	}

	task, err := h.buildTask(session, req.Screen, correlationID, export)
	if err != nil {
		session.EndExport()
		Internal(c, "failed to build export task")
		return
	}

	// Subscribe before enqueueing so the completion message cannot slip
	// past the guard watcher.
	guardCtx, guardCancel := context.WithTimeout(context.Background(), exportGuardTimeout)
	pubsub := h.redisClient.Subscribe(guardCtx, fmt.Sprintf("session_notify:%s", session.ID))
	go h.releaseGuardOnCompletion(guardCtx, guardCancel, pubsub, session, correlationID)

	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(5))
	if err != nil {
		guardCancel()
		session.EndExport()
		_ = h.db.WithContext(ctx).Model(export).Updates(map[string]any{
			"status":     "failed",
			"error_code": errcode.SystemError,
		}).Error
		Internal(c, "failed to enqueue export")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":   "export request accepted",
		"export_id": export.ID,
		"task_id":   info.ID,
		"filename":  export.Filename,
	})
}

// buildExport derives the export record from the session snapshot.
func (h *ExportHandler) buildExport(session *editor.Session, screen boundsPayload) (*database.Export, error) {
	kind := "image"
	if session.Template.Category.IsDocument() {
		kind = "pdf"
	}

	filename, err := h.exportFilename(session)
	if err != nil {
		return nil, err
	}

	if kind == "image" {
		if screen.Width <= 0 || screen.Height <= 0 {
			return nil, fmt.Errorf("screen bounds are required for image exports")
		}
		if strings.TrimSpace(session.Template.ImageURL) == "" {
			return nil, fmt.Errorf("template has no source image")
		}
	}

	return &database.Export{
		SessionID: session.ID,
		Kind:      kind,
		Filename:  filename,
		Status:    "pending",
	}, nil
}

// buildTask builds the queue task now that the export row has its id.
func (h *ExportHandler) buildTask(session *editor.Session, screen boundsPayload, correlationID string, export *database.Export) (*asynq.Task, error) {
	if export.Kind == "image" {
		payload := tasks.ImageExportPayload{
			ExportID:      export.ID,
			SessionID:     session.ID,
			SourceURL:     session.Template.ImageURL,
			Filters:       session.Filters(),
			Overlays:      session.Overlays(),
			ScreenBounds:  screen.bounds(),
			Filename:      export.Filename,
			CorrelationID: correlationID,
		}
		return tasks.NewImageExportTask(payload)
	}

	payload := tasks.PDFExportPayload{
		ExportID:      export.ID,
		SessionID:     session.ID,
		Filename:      export.Filename,
		CorrelationID: correlationID,
	}
	if resume, err := session.ResumeData(); err == nil {
		payload.Resume = &resume
	}
	if card, err := session.CardData(); err == nil {
		payload.Card = &card
	}
	return tasks.NewPDFExportTask(payload)
}

func (h *ExportHandler) exportFilename(session *editor.Session) (string, error) {
	switch session.Template.Category {
	case editor.CategoryResume:
		resume, err := session.ResumeData()
		if err != nil {
			return "", err
		}
		return sanitizeFilename(resume.FullName) + "_Resume.pdf", nil
	case editor.CategoryBusinessCard:
		card, err := session.CardData()
		if err != nil {
			return "", err
		}
		return sanitizeFilename(card.Company) + "_Card.pdf", nil
	default:
		return sanitizeFilename(session.Template.Title) + "_Export.jpg", nil
	}
}

// sanitizeFilename collapses whitespace runs into single underscores.
func sanitizeFilename(s string) string {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return "Untitled"
	}
	return strings.Join(fields, "_")
}

// releaseGuardOnCompletion watches the session's notify channel for the
// terminal message of this export and clears the in-flight flag, so the
// guard does not depend on a WebSocket client being connected.
func (h *ExportHandler) releaseGuardOnCompletion(
	ctx context.Context,
	cancel context.CancelFunc,
	pubsub *redis.PubSub,
	session *editor.Session,
	correlationID string,
) {
	defer cancel()
	defer session.EndExport()
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				h.logger.Warn("export guard released by timeout",
					slog.String("session_id", session.ID),
					slog.String("correlation_id", correlationID),
				)
			}
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var notify worker.ExportNotifyMessage
			if err := json.Unmarshal([]byte(msg.Payload), &notify); err != nil {
				continue
			}
			if notify.CorrelationID == correlationID {
				return
			}
		}
	}
}

// Download redirects to a presigned URL for a finished export; if the
// URL cannot be signed it falls back to streaming the object directly.
func (h *ExportHandler) Download(c *gin.Context) {
	exportID, err := strconv.ParseUint(c.Param("exportID"), 10, 64)
	if err != nil {
		BadRequest(c, "invalid export id")
		return
	}

	ctx := c.Request.Context()
	var export database.Export
	if err := h.db.WithContext(ctx).First(&export, uint(exportID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "export not found")
			return
		}
		Internal(c, "failed to load export")
		return
	}

	if export.Status != "completed" || export.ObjectKey == "" {
		Conflict(c, "export is not ready")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURL(ctx, export.ObjectKey, h.presignTTL, export.Filename)
	if err == nil {
		c.Redirect(http.StatusFound, signedURL)
		return
	}

	log := middleware.LoggerFromContext(c)
	log.Warn("presign failed, falling back to direct streaming", slog.Any("error", err))

	if err := h.streamObject(c, export); err != nil {
		if storage.IsNoSuchKey(err) {
			ErrorWithCode(c, http.StatusNotFound, errcode.ResourceMissing,
				"The export artifact is no longer available. Please export again.")
			return
		}
		log.Error("direct download failed", slog.Any("error", err))
		ErrorWithCode(c, http.StatusInternalServerError, errcode.DownloadFailed,
			"The download could not be completed. Please try exporting again.")
	}
}

func (h *ExportHandler) streamObject(c *gin.Context, export database.Export) error {
	ctx := c.Request.Context()

	stat, err := h.storage.StatObject(ctx, export.ObjectKey)
	if err != nil {
		return fmt.Errorf("stat export object: %w", err)
	}

	object, err := h.storage.GetObject(ctx, export.ObjectKey)
	if err != nil {
		return fmt.Errorf("open export object: %w", err)
	}
	defer object.Close()

	contentType := stat.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, stat.Size, contentType, object, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", export.Filename),
	})
	return nil
}
