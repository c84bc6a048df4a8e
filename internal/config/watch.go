// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// DefaultReloadInterval is the minimum spacing between two reloads.
const DefaultReloadInterval = 250 * time.Millisecond

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher reloads a config file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so editors
// that save by renaming a temporary file are still picked up.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	limiter *rate.Limiter

	// OnLoad receives every successfully reloaded config.
	OnLoad func(*Config)
	// OnError receives decode, validation and watch errors. The watcher
	// keeps running after an error.
	OnError func(error)
}

// NewWatcher starts watching path. Reloads are spaced at least interval
// apart; a zero interval uses DefaultReloadInterval.
func NewWatcher(path string, interval time.Duration) (*Watcher, error) {
	if interval <= 0 {
		interval = DefaultReloadInterval
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		watcher: fw,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run processes file events until ctx is cancelled or the watcher is
// closed. It always returns nil on a clean shutdown.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.fail(fmt.Errorf("watch %s: %w", w.path, err))
		}
	}
}

// Close stops the watcher and ends Run.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// relevant reports whether event may have changed the config file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		w.fail(err)
		return
	}
	if w.OnLoad != nil {
		w.OnLoad(cfg)
	}
}

func (w *Watcher) fail(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
