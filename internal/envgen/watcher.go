// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envgen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-appenv/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups bursts of file events into one regeneration.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls onChange whenever one of the watched files in dir is
// created, written, removed or renamed. It watches the directory rather than
// the files so that files created after start are noticed too.
type Watcher struct {
	dir      string
	names    map[string]struct{}
	onChange func(context.Context) error
	debounce time.Duration

	logger *logger.Logger
}

// NewWatcher returns a Watcher for the given file names inside dir.
func NewWatcher(dir string, names []string, onChange func(context.Context) error, logger *logger.Logger) *Watcher {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return &Watcher{
		dir:      dir,
		names:    set,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   logger,
	}
}

// WithDebounce overrides [DefaultDebounce].
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run blocks until ctx is cancelled. Errors returned by onChange are logged
// and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.logger.Info().
		Str("event", "envgen.watcher_started").
		Str("dir", w.dir).
		Msg("watching env files for changes")

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.logger.Info().Str("event", "envgen.watcher_stopped").Msg("env watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, watched := w.names[filepath.Base(event.Name)]; !watched {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug().
				Str("event", "envgen.file_changed").
				Str("file", event.Name).
				Str("op", event.Op.String()).
				Msg("env file changed")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.onChange(ctx); err != nil {
				w.logger.Error().
					Err(err).
					Str("event", "envgen.regenerate_failed").
					Msg("regenerating env packages failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().
				Err(err).
				Str("event", "envgen.watcher_error").
				Msg("env watcher error")
		}
	}
}
