package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"craftdeck/internal/database"
	"craftdeck/internal/errcode"
	"craftdeck/internal/pdf"
	"craftdeck/internal/storage"
	"craftdeck/internal/tasks"
)

// PDFExportHandler consumes document export tasks: it lays out the
// snapshotted resume or business card as print HTML and renders it to
// PDF in a headless browser.
type PDFExportHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
	presignTTL  time.Duration
	render      func(htmlContent string, paper pdf.Paper) ([]byte, error)
}

// NewPDFExportHandler creates the task handler.
func NewPDFExportHandler(
	db *gorm.DB,
	storage *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	presignTTL time.Duration,
) *PDFExportHandler {
	return &PDFExportHandler{
		db:          db,
		storage:     storage,
		redisClient: redisClient,
		logger:      logger,
		presignTTL:  presignTTL,
		render:      pdf.RenderHTML,
	}
}

// ProcessTask implements asynq.Handler.
func (h *PDFExportHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.PDFExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("session_id", payload.SessionID),
		slog.Uint64("export_id", uint64(payload.ExportID)),
	)
	log.Info("Starting PDF export task...")

	var export database.Export
	if err := h.db.WithContext(ctx).First(&export, payload.ExportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("export record not found, skipping task")
			return nil
		}
		log.Error("query export failed", slog.Any("error", err))
		return err
	}

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}
		h.finishFailed(ctx, log, &export, payload.CorrelationID, errcode.SystemError, strings.TrimSpace(retErr.Error()))
	}()

	var (
		htmlContent string
		paper       pdf.Paper
		err         error
	)
	switch {
	case payload.Resume != nil:
		htmlContent, err = pdf.ResumeHTML(payload.Resume)
		paper = pdf.A4Portrait
	case payload.Card != nil:
		htmlContent, err = pdf.CardHTML(payload.Card)
		paper = pdf.CardLandscape
	default:
		log.Warn("pdf export payload carries no document, skipping task")
		return nil
	}
	if err != nil {
		log.Error("render print layout failed", slog.Any("error", err))
		return err
	}

	pdfBytes, err := h.render(htmlContent, paper)
	if err != nil {
		if errors.Is(err, pdf.ErrRendererNotReady) {
			// Queue backoff would keep the user waiting for minutes on a
			// renderer that is simply absent. Fail now and ask for a retry.
			log.Warn("pdf renderer unavailable", slog.Any("error", err))
			h.finishFailed(ctx, log, &export, payload.CorrelationID, errcode.RendererNotReady,
				"The document renderer is not available right now. Please try again shortly.")
			return nil
		}
		log.Error("render pdf failed", slog.Any("error", err))
		return err
	}

	objectKey := fmt.Sprintf("exports/documents/%s/%s.pdf", payload.SessionID, uuid.NewString())
	reader := bytes.NewReader(pdfBytes)
	if _, err := h.storage.UploadFile(ctx, objectKey, reader, int64(len(pdfBytes)), "application/pdf"); err != nil {
		log.Error("upload export pdf failed", slog.Any("error", err))
		return err
	}

	if err := h.db.WithContext(ctx).Model(&export).Updates(map[string]any{
		"object_key": objectKey,
		"status":     "completed",
		"error_code": errcode.OK,
	}).Error; err != nil {
		log.Error("update export record failed", slog.Any("error", err))
		return err
	}

	downloadURL, err := h.storage.GeneratePresignedURL(ctx, objectKey, h.presignTTL, payload.Filename)
	if err != nil {
		log.Error("generate presigned url failed", slog.Any("error", err))
		return err
	}

	notify := ExportNotifyMessage{
		Status:        "completed",
		SessionID:     payload.SessionID,
		Kind:          "pdf",
		CorrelationID: payload.CorrelationID,
		ExportID:      export.ID,
		DownloadURL:   downloadURL,
		Filename:      payload.Filename,
		ErrorCode:     errcode.OK,
	}
	if err := publishExportNotify(ctx, h.redisClient, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("PDF export task completed successfully.")
	return nil
}

func (h *PDFExportHandler) finishFailed(ctx context.Context, log *slog.Logger, export *database.Export, correlationID string, code int, message string) {
	if err := h.db.WithContext(ctx).Model(export).Updates(map[string]any{
		"status":     "failed",
		"error_code": code,
	}).Error; err != nil {
		log.Error("mark export failed", slog.Any("error", err))
	}
	notify := ExportNotifyMessage{
		Status:        "error",
		SessionID:     export.SessionID,
		Kind:          export.Kind,
		CorrelationID: correlationID,
		ExportID:      export.ID,
		ErrorCode:     code,
		ErrorMessage:  message,
	}
	if err := publishExportNotify(ctx, h.redisClient, notify); err != nil {
		log.Error("publish export error notification failed", slog.Any("error", err))
	}
}
