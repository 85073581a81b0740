package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fredcamaral/decksite/internal/domain/ports"
)

// PollingWatcher watches a directory tree of markdown sources using
// polling, so the preview server can rebuild without OS-specific watch
// APIs.
type PollingWatcher struct {
	interval  time.Duration
	debounce  time.Duration
	fileInfos map[string]fileInfo
	events    chan ports.FileChangeEvent
	mu        sync.RWMutex
	wg        sync.WaitGroup
	stopped   bool
	stopCh    chan struct{}
}

type fileInfo struct {
	size     int64
	modTime  time.Time
	checksum string
}

// NewPollingWatcher creates a new polling-based file watcher
func NewPollingWatcher(interval, debounce time.Duration) *PollingWatcher {
	return &PollingWatcher{
		interval:  interval,
		debounce:  debounce,
		fileInfos: make(map[string]fileInfo),
		events:    make(chan ports.FileChangeEvent, 10),
		stopCh:    make(chan struct{}),
	}
}

// Watch starts watching every *.md file under root for changes.
func (w *PollingWatcher) Watch(ctx context.Context, root string) (<-chan ports.FileChangeEvent, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	// Baseline snapshot; changes are reported relative to it.
	if _, err := w.snapshot(absRoot); err != nil {
		return nil, fmt.Errorf("initial scan: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.pollLoop(ctx, absRoot)
	}()

	return w.events, nil
}

// Stop stops the file watcher
func (w *PollingWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}

	w.stopped = true
	close(w.stopCh)
	w.wg.Wait()
	close(w.events)

	return nil
}

// pollLoop periodically re-snapshots the tree and emits debounced events.
func (w *PollingWatcher) pollLoop(ctx context.Context, root string) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	lastEventTime := time.Time{}

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			changes, err := w.snapshot(root)
			if err != nil {
				log.Printf("[WARN] [watcher] scan error: %v", err)
				continue
			}

			for _, event := range changes {
				if time.Since(lastEventTime) < w.debounce {
					continue
				}
				select {
				case w.events <- event:
					lastEventTime = time.Now()
				case <-ctx.Done():
					return
				case <-w.stopCh:
					return
				}
			}
		}
	}
}

// snapshot rescans the tree and returns the change events against the
// previous state. The first call establishes the baseline and returns no
// events.
func (w *PollingWatcher) snapshot(root string) ([]ports.FileChangeEvent, error) {
	seen := make(map[string]bool)
	var changes []ports.FileChangeEvent

	first := func() bool {
		w.mu.RLock()
		defer w.mu.RUnlock()
		return len(w.fileInfos) == 0
	}()

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}

		seen[path] = true
		changed, created, err := w.checkFile(path)
		if err != nil {
			return err
		}
		if first {
			return nil
		}
		if created {
			changes = append(changes, ports.FileChangeEvent{Path: path, Type: ports.Created, Timestamp: time.Now()})
		} else if changed {
			changes = append(changes, ports.FileChangeEvent{Path: path, Type: ports.Modified, Timestamp: time.Now()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Anything tracked but no longer on disk was deleted.
	w.mu.Lock()
	for path := range w.fileInfos {
		if !seen[path] {
			delete(w.fileInfos, path)
			if !first {
				changes = append(changes, ports.FileChangeEvent{Path: path, Type: ports.Deleted, Timestamp: time.Now()})
			}
		}
	}
	w.mu.Unlock()

	return changes, nil
}

// checkFile updates the tracked state for one file and reports whether it
// changed or is new. Size and mtime gate the checksum so unchanged files
// stay cheap.
func (w *PollingWatcher) checkFile(path string) (changed, created bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, false, fmt.Errorf("stat file: %w", err)
	}

	w.mu.RLock()
	oldInfo, exists := w.fileInfos[path]
	w.mu.RUnlock()

	if exists && oldInfo.size == info.Size() && oldInfo.modTime.Equal(info.ModTime()) {
		return false, false, nil
	}

	checksum, err := w.calculateChecksum(path)
	if err != nil {
		return false, false, fmt.Errorf("calculate checksum: %w", err)
	}

	w.mu.Lock()
	w.fileInfos[path] = fileInfo{size: info.Size(), modTime: info.ModTime(), checksum: checksum}
	w.mu.Unlock()

	if !exists {
		return false, true, nil
	}
	return oldInfo.checksum != checksum, false, nil
}

// calculateChecksum calculates the SHA256 checksum of a file
func (w *PollingWatcher) calculateChecksum(path string) (string, error) {
	file, err := os.Open(path) // #nosec G304 - path comes from the watched tree
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Ensure PollingWatcher implements ports.FileWatcher
var _ ports.FileWatcher = (*PollingWatcher)(nil)
