package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/catalog/internal/otel"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
)

const (
	DefaultDebounce = 500 * time.Millisecond
	tickInterval    = 100 * time.Millisecond
)

type Reloader interface {
	Reload(c context.Context) (int, error)
}

// Watcher reloads the catalog after the watched files stop changing for the
// debounce window. Directories are watched instead of files so that
// rename-over-write saves are seen.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	reloader Reloader
	files    map[string]struct{}
	debounce time.Duration
	pending  time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

func NewWatcher(reloader Reloader, debounce time.Duration, paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed creating fsnotify watcher with error=%w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	files := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("failed resolving path=%s with error=%w", path, err)
		}
		files[abs] = struct{}{}
	}

	return &Watcher{
		watcher:  w,
		reloader: reloader,
		files:    files,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start adds the parent directories of the watched files and runs the event
// loop until Stop is called or c is cancelled.
func (w *Watcher) Start(c context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "Watcher Start").Logger()

	dirs := map[string]struct{}{}
	for file := range w.files {
		dirs[filepath.Dir(file)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			err = fmt.Errorf("failed watching dir=%s with error=%w", dir, err)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		logger.Info().Str(log.KeyPath, dir).Msg("watching directory")
	}

	go w.run(logger.WithContext(c))
	return nil
}

// Stop ends the event loop and releases the fsnotify watcher. It is safe to
// call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return w.watcher.Close()
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	return w.watcher.Close()
}

func (w *Watcher) run(c context.Context) {
	defer close(w.doneCh)

	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "Watcher run").Logger()

	ticker := time.NewTicker(min(tickInterval, w.debounce))
	defer ticker.Stop()

	for {
		select {
		case <-c.Done():
			logger.Info().Msg("context cancelled stopping watcher")
			return
		case <-w.stopCh:
			logger.Info().Msg("stop signal received")
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(c, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error().Err(err).Msg("watcher error")
		case now := <-ticker.C:
			w.reloadIfSettled(c, now)
		}
	}
}

func (w *Watcher) handleEvent(c context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}
	if _, ok := w.files[abs]; !ok {
		return
	}

	zerolog.Ctx(c).Debug().
		Str(log.KeyPath, abs).
		Str(log.KeyEvent, event.Op.String()).
		Msg("catalog file changed")
	w.pending = time.Now()
}

func (w *Watcher) reloadIfSettled(c context.Context, now time.Time) {
	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		return
	}
	w.pending = time.Time{}

	c, span := otel.Tracer.Start(c, "Watcher reload")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Watcher reload").
		Str(log.KeyProcess, "reloading catalog").
		Logger()

	logger.Info().Msg("reloading catalog")
	count, err := w.reloader.Reload(logger.WithContext(c))
	if err != nil {
		err = fmt.Errorf("failed reloading catalog with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Int(log.KeyProductCount, count).Msg("reloaded catalog")
}
