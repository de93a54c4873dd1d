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
	"craftdeck/internal/render"
	"craftdeck/internal/storage"
	"craftdeck/internal/tasks"
)

// ImageExportHandler consumes image export tasks: it re-renders the
// session's edits onto the source image at native resolution and uploads
// the finished JPEG.
type ImageExportHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
	compositor  *render.Compositor
	presignTTL  time.Duration
}

// NewImageExportHandler creates the task handler.
func NewImageExportHandler(
	db *gorm.DB,
	storage *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	presignTTL time.Duration,
) (*ImageExportHandler, error) {
	compositor, err := render.NewCompositor()
	if err != nil {
		return nil, fmt.Errorf("init compositor: %w", err)
	}
	return &ImageExportHandler{
		db:          db,
		storage:     storage,
		redisClient: redisClient,
		logger:      logger,
		compositor:  compositor,
		presignTTL:  presignTTL,
	}, nil
}

// ProcessTask implements asynq.Handler.
func (h *ImageExportHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.ImageExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("session_id", payload.SessionID),
		slog.Uint64("export_id", uint64(payload.ExportID)),
	)
	log.Info("Starting image export task...")

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

	srcBytes, err := fetchSourceImage(ctx, payload.SourceURL)
	if err != nil {
		if errors.Is(err, render.ErrSourceBlocked) {
			// The host refused the pixels outright; retrying cannot help.
			log.Warn("source image blocked for export", slog.Any("error", err))
			h.finishFailed(ctx, log, &export, payload.CorrelationID, errcode.ExportBlocked,
				"The source image could not be read for export. Try a different image.")
			return nil
		}
		log.Error("fetch source image failed", slog.Any("error", err))
		return err
	}

	src, err := render.Decode(srcBytes)
	if err != nil {
		if errors.Is(err, render.ErrSourceBlocked) {
			// Retrying cannot fix an undecodable source. Record the
			// outcome and tell the client the export is blocked.
			log.Warn("source image blocked for export", slog.Any("error", err))
			h.finishFailed(ctx, log, &export, payload.CorrelationID, errcode.ExportBlocked,
				"The source image could not be read for export. Try a different image.")
			return nil
		}
		log.Error("decode source image failed", slog.Any("error", err))
		return err
	}

	canvas, err := h.compositor.Composite(src, payload.Filters, payload.Overlays, payload.ScreenBounds)
	if err != nil {
		log.Error("composite export image failed", slog.Any("error", err))
		return err
	}

	jpegBytes, err := h.compositor.EncodeJPEG(canvas)
	if err != nil {
		log.Error("encode export jpeg failed", slog.Any("error", err))
		return err
	}

	objectKey := fmt.Sprintf("exports/images/%s/%s.jpg", payload.SessionID, uuid.NewString())
	reader := bytes.NewReader(jpegBytes)
	if _, err := h.storage.UploadFile(ctx, objectKey, reader, int64(len(jpegBytes)), "image/jpeg"); err != nil {
		log.Error("upload export jpeg failed", slog.Any("error", err))
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
		Kind:          "image",
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

	log.Info("Image export task completed successfully.")
	return nil
}

func (h *ImageExportHandler) finishFailed(ctx context.Context, log *slog.Logger, export *database.Export, correlationID string, code int, message string) {
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

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
