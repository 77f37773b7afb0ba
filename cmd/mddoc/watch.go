package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch re-runs render whenever one of files is written, created or
// renamed, until ctx is canceled. Events are debounced. The parent
// directories are watched rather than the files, so editors that save by
// replacing the file keep triggering renders.
//
// Returns the exit code of the last render; last is the code of the render
// that preceded watching.
func watch(ctx context.Context, files []string, debounce time.Duration, logger *slog.Logger, last int, render func() int) int {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("watcher: start failed", slog.String("error", err.Error()))
		return last
	}
	defer w.Close()

	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			abs = filepath.Clean(f)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			logger.Error("watcher: add failed", slog.String("path", dir), slog.String("error", err.Error()))
			return last
		}
	}

	logger.Info("watcher: started", slog.Int("files", len(watched)))

	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			fire = timer.C
			return
		}
		timer.Reset(debounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return last

		case <-fire:
			timer, fire = nil, nil
			last = render()
			logOutcome(logger, last)

		case ev, ok := <-w.Events:
			if !ok {
				return last
			}
			if !watched[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("watcher: change", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			schedule()

		case err, ok := <-w.Errors:
			if !ok {
				return last
			}
			logger.Warn("watcher: error", slog.String("error", err.Error()))
		}
	}
}
