package worker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"craftdeck/internal/database"
	"craftdeck/internal/document"
	"craftdeck/internal/errcode"
	"craftdeck/internal/pdf"
	"craftdeck/internal/tasks"
)

func newWorkerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.Export{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// deadRedis points at a closed port so notify publishes fail fast; the
// handlers only log that failure.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func seedExport(t *testing.T, db *gorm.DB, kind string) *database.Export {
	t.Helper()
	export := &database.Export{
		SessionID: "sess-1",
		Kind:      kind,
		Filename:  "Untitled_Export.jpg",
		Status:    "pending",
	}
	if err := db.Create(export).Error; err != nil {
		t.Fatalf("create export: %v", err)
	}
	return export
}

func TestImageExportRefusedSourceFailsWithoutRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	db := newWorkerDB(t)
	export := seedExport(t, db, "image")
	h, err := NewImageExportHandler(db, nil, deadRedis(), discardLogger(), time.Hour)
	if err != nil {
		t.Fatalf("NewImageExportHandler: %v", err)
	}

	task, err := tasks.NewImageExportTask(tasks.ImageExportPayload{
		ExportID:      export.ID,
		SessionID:     export.SessionID,
		SourceURL:     srv.URL,
		Filename:      export.Filename,
		CorrelationID: "corr-1",
	})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}

	if err := h.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask should consume a refused source, got %v", err)
	}

	var got database.Export
	if err := db.First(&got, export.ID).Error; err != nil {
		t.Fatalf("reload export: %v", err)
	}
	if got.Status != "failed" {
		t.Errorf("status = %q, want failed", got.Status)
	}
	if got.ErrorCode != errcode.ExportBlocked {
		t.Errorf("error_code = %d, want %d", got.ErrorCode, errcode.ExportBlocked)
	}
}

func TestPDFExportMissingRendererFailsWithoutRetry(t *testing.T) {
	db := newWorkerDB(t)
	export := seedExport(t, db, "pdf")
	h := NewPDFExportHandler(db, nil, deadRedis(), discardLogger(), time.Hour)
	h.render = func(string, pdf.Paper) ([]byte, error) {
		return nil, fmt.Errorf("%w: launch chromium: not found", pdf.ErrRendererNotReady)
	}

	resume := document.DefaultResume()
	task, err := tasks.NewPDFExportTask(tasks.PDFExportPayload{
		ExportID:      export.ID,
		SessionID:     export.SessionID,
		Resume:        &resume,
		Filename:      "Alexander_Smith_Resume.pdf",
		CorrelationID: "corr-2",
	})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}

	if err := h.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask should consume a renderer failure, got %v", err)
	}

	var got database.Export
	if err := db.First(&got, export.ID).Error; err != nil {
		t.Fatalf("reload export: %v", err)
	}
	if got.Status != "failed" {
		t.Errorf("status = %q, want failed", got.Status)
	}
	if got.ErrorCode != errcode.RendererNotReady {
		t.Errorf("error_code = %d, want %d", got.ErrorCode, errcode.RendererNotReady)
	}
}
