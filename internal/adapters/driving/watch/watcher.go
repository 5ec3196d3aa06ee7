// Package watch ingests files as they appear in a watched directory.
// Each created or modified file is fed through the ingestion pipeline;
// per-file failures are logged and never stop the watch loop.
package watch

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/docuchat/docuchat/internal/core/ports/driving"
	"github.com/docuchat/docuchat/internal/core/services"
	"github.com/docuchat/docuchat/internal/logger"
)

// Watcher feeds filesystem events into the ingestion pipeline.
type Watcher struct {
	ingest driving.IngestService
}

// NewWatcher creates a directory watcher over the given ingest service.
func NewWatcher(ingest driving.IngestService) *Watcher {
	return &Watcher{ingest: ingest}
}

// Watch ingests every file created or written under dir until the
// context is cancelled. Files with an unsupported or unknown content
// type are skipped.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %q: not a directory", dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	logger.Info("Watching %s for new documents", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.handleFile(ctx, event.Name)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

// handleFile ingests a single file, skipping directories and
// unsupported content types.
func (w *Watcher) handleFile(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	contentType := services.ContentTypeFromPath(path)
	if contentType == "" || !w.ingest.IsSupported(contentType) {
		logger.Debug("Skipping %s: unsupported content type %q", path, contentType)
		return
	}

	doc, err := w.ingest.IngestFile(ctx, path, contentType)
	if err != nil {
		logger.Warn("Failed to ingest %s: %v", path, err)
		return
	}
	logger.Info("Ingested %s as document %s", path, doc.ID)
}
