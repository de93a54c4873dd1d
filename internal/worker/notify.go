package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ExportNotifyMessage is the WebSocket message protocol forwarded to the
// client over Redis Pub/Sub. Field names match what the client parses.
type ExportNotifyMessage struct {
	Status        string `json:"status"`
	SessionID     string `json:"session_id"`
	Kind          string `json:"kind"`
	CorrelationID string `json:"correlation_id"`
	ExportID      uint   `json:"export_id,omitempty"`
	DownloadURL   string `json:"download_url,omitempty"`
	Filename      string `json:"filename,omitempty"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
}

func publishExportNotify(ctx context.Context, rdb *redis.Client, notify ExportNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("session_notify:%s", notify.SessionID)
	if err := rdb.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}
