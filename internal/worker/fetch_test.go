package worker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"craftdeck/internal/render"
)

func TestFetchSourceImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("image bytes"))
	}))
	defer srv.Close()

	data, err := fetchSourceImage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetchSourceImage: %v", err)
	}
	if string(data) != "image bytes" {
		t.Fatalf("unexpected body %q", data)
	}
}

func TestFetchSourceImageMapsRefusalToBlocked(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := fetchSourceImage(context.Background(), srv.URL)
		srv.Close()
		if err == nil {
			t.Fatalf("expected error for %d response", status)
		}
		if !errors.Is(err, render.ErrSourceBlocked) {
			t.Fatalf("status %d: err = %v, want source-blocked", status, err)
		}
	}
}

func TestFetchSourceImageServerErrorStaysRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := fetchSourceImage(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if errors.Is(err, render.ErrSourceBlocked) {
		t.Fatalf("transient upstream failure must not read as blocked: %v", err)
	}
}

func TestFetchSourceImageRejectsEmptyURL(t *testing.T) {
	if _, err := fetchSourceImage(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty url")
	}
}
