package ports

import (
	"context"
	"time"
)

// Event types pushed to connected preview clients.
const (
	// EventTypeReload asks the browser to reload the current page
	EventTypeReload = "reload"
	// EventTypeFileChange reports which source file changed
	EventTypeFileChange = "file-change"
)

// UpdateEvent is one live-reload notification sent over the WebSocket.
type UpdateEvent struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// PreviewServer serves the generated site and pushes reload events to
// connected browsers.
type PreviewServer interface {
	// Start starts serving on the given host and port
	Start(ctx context.Context, port int, host string) error
	// Stop gracefully stops the server
	Stop(ctx context.Context) error
	// NotifyClients sends an update event to all connected clients
	NotifyClients(event UpdateEvent) error
}
