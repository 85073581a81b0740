package ports

import (
	"context"
	"time"
)

// FileWatcher watches presentation sources for changes so the preview
// server can rebuild and push reloads.
type FileWatcher interface {
	// Watch starts watching the given root for markdown changes
	Watch(ctx context.Context, root string) (<-chan FileChangeEvent, error)
	// Stop stops the file watcher
	Stop() error
}

// FileChangeEvent represents a file change event
type FileChangeEvent struct {
	Path      string
	Type      ChangeType
	Timestamp time.Time
}

// ChangeType represents the type of file change
type ChangeType int

const (
	// Modified indicates the file was modified
	Modified ChangeType = iota
	// Created indicates the file was created
	Created
	// Deleted indicates the file was deleted
	Deleted
)

// String returns the string representation of ChangeType
func (c ChangeType) String() string {
	switch c {
	case Modified:
		return "modified"
	case Created:
		return "created"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}
