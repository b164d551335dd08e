// Package watcher watches a directory for new transcript files.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

var (
	// ErrNotDirectory indicates the watch path is not a directory.
	ErrNotDirectory = errors.New("watch path is not a directory")

	// ErrWatcherFailed indicates the filesystem watcher failed to initialize.
	ErrWatcherFailed = errors.New("failed to initialize filesystem watcher")
)

// debounceWindow suppresses duplicate events for the same file. Editors
// and copy tools typically fire a create followed by several writes.
const debounceWindow = 500 * time.Millisecond

// Event is a transcript file ready for parsing.
type Event struct {
	// Path is the absolute path to the transcript file.
	Path string

	// Timestamp is when the event was detected.
	Timestamp time.Time
}

// Watcher watches a directory and emits an Event for each transcript
// file that is created or modified in it.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	events  chan Event
	stop    chan struct{}

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// NewWatcher creates a watcher for the given directory.
func NewWatcher(dir string) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat watch dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatcherFailed, err)
	}

	return &Watcher{
		dir:      dir,
		watcher:  fsw,
		events:   make(chan Event, 10),
		stop:     make(chan struct{}),
		lastSeen: make(map[string]time.Time),
	}, nil
}

// Start begins watching the directory.
//
// Events are sent to the Events() channel from a background goroutine.
// Call Stop() to clean up resources.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and cleans up resources.
func (w *Watcher) Stop() {
	select {
	case <-w.stop:
		// Already stopped
		return
	default:
		close(w.stop)
		_ = w.watcher.Close()
	}
}

// Events returns the channel for receiving transcript events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// processEvents filters filesystem events down to transcript events.
func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !IsTranscript(event.Name) {
				continue
			}
			if w.debounced(event.Name) {
				continue
			}

			// Send event (non-blocking)
			select {
			case w.events <- Event{Path: event.Name, Timestamp: time.Now()}:
			default:
				// Channel full, skip event
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			_ = err
		}
	}
}

// debounced reports whether this path fired within the debounce window,
// and records the sighting.
func (w *Watcher) debounced(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	last, seen := w.lastSeen[path]
	w.lastSeen[path] = now
	return seen && now.Sub(last) < debounceWindow
}

// IsTranscript reports whether a path looks like a transcript file.
func IsTranscript(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt"
}
