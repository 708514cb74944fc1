package platform

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ArtifactEventType describes what happened to the watched file
type ArtifactEventType string

const (
	ArtifactRemoved ArtifactEventType = "removed"
	ArtifactMoved   ArtifactEventType = "moved"
)

// ArtifactEvent reports that the watched file left its path
type ArtifactEvent struct {
	Path      string
	EventType ArtifactEventType
	Timestamp time.Time
}

// ArtifactWatcher observes the directory of a single file and reports when
// that file is removed or moved away by someone else.
type ArtifactWatcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	events  chan ArtifactEvent

	mu     sync.Mutex
	target string
	dir    string
}

// NewArtifactWatcher creates a watcher; call Start to begin processing
func NewArtifactWatcher(logger *slog.Logger) (*ArtifactWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &ArtifactWatcher{
		watcher: w,
		logger:  logger,
		events:  make(chan ArtifactEvent, 8),
	}, nil
}

// Events delivers artifact events to the owner
func (w *ArtifactWatcher) Events() <-chan ArtifactEvent {
	return w.events
}

// Watch switches the watched file to path
func (w *ArtifactWatcher) Watch(path string) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if dir != w.dir {
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
		}
		if err := w.watcher.Add(dir); err != nil {
			w.dir = ""
			w.target = ""
			return err
		}
		w.dir = dir
	}
	w.target = path
	w.logger.Debug("Watching artifact", "path", path)
	return nil
}

// Clear stops reporting events until the next Watch
func (w *ArtifactWatcher) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.target = ""
}

// Start runs the event loop until ctx is done or the watcher is closed
func (w *ArtifactWatcher) Start(ctx context.Context) {
	go w.watchLoop(ctx)
}

// Close releases the underlying fsnotify watcher
func (w *ArtifactWatcher) Close() error {
	return w.watcher.Close()
}

func (w *ArtifactWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Artifact watcher error", "error", err)

		case <-ctx.Done():
			return
		}
	}
}

// handleEvent forwards remove/rename events that hit the current target
func (w *ArtifactWatcher) handleEvent(event fsnotify.Event) {
	var eventType ArtifactEventType
	switch {
	case event.Has(fsnotify.Remove):
		eventType = ArtifactRemoved
	case event.Has(fsnotify.Rename):
		eventType = ArtifactMoved
	default:
		return
	}

	w.mu.Lock()
	target := w.target
	w.mu.Unlock()

	if target == "" || filepath.Clean(event.Name) != target {
		return
	}

	artifactEvent := ArtifactEvent{
		Path:      target,
		EventType: eventType,
		Timestamp: time.Now(),
	}

	select {
	case w.events <- artifactEvent:
		w.logger.Info("Artifact left its path", "path", target, "event", eventType)
	default:
		w.logger.Warn("Artifact event channel full, dropping event", "path", target)
	}
}
