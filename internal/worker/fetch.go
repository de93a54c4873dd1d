package worker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"craftdeck/internal/render"
)

const maxSourceImageBytes = 32 << 20

// fetchSourceImage downloads the raw bytes of an export's source image.
func fetchSourceImage(ctx context.Context, sourceURL string) ([]byte, error) {
	sourceURL = strings.TrimSpace(sourceURL)
	if sourceURL == "" {
		return nil, fmt.Errorf("source image url missing")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build source request: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch source image: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		// A 4xx refusal is the host denying access to the pixels; no
		// number of retries will change its mind.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, fmt.Errorf("%w: source refused with status %d", render.ErrSourceBlocked, resp.StatusCode)
		}
		return nil, fmt.Errorf("fetch source image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read source image: %w", err)
	}
	if len(data) > maxSourceImageBytes {
		return nil, fmt.Errorf("source image exceeds %d bytes", maxSourceImageBytes)
	}

	return data, nil
}
