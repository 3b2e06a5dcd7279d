package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/iburimskiy/spidr-form/internal/particles"
)

// Watcher reports changes to a single file.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange chan struct{}
	done     chan struct{}
}

// NewWatcher watches path for writes. It watches the parent directory so
// editors that replace the file on save are still seen.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		path:     path,
		debounce: debounce,
		onChange: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	go watcher.loop()
	return watcher, nil
}

// Changes signals once per burst of writes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.onChange
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case w.onChange <- struct{}{}:
				default:
				}
			})
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// WatchTheme loads the theme at path and reloads it after every change
// until ctx is done. Only the latest style is kept when the reader falls
// behind. Files that fail to load are logged and skipped.
func WatchTheme(ctx context.Context, path string, debounce time.Duration, logger *log.Logger) (<-chan particles.Style, error) {
	w, err := NewWatcher(path, debounce)
	if err != nil {
		return nil, fmt.Errorf("watch theme: %w", err)
	}

	styles := make(chan particles.Style, 1)
	publish := func() {
		style, err := loadStyle(path)
		if err != nil {
			logger.Printf("theme: %v", err)
			return
		}
		select {
		case <-styles:
		default:
		}
		styles <- style
		logger.Printf("theme: loaded %s", path)
	}

	publish()
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.Changes():
				publish()
			}
		}
	}()
	return styles, nil
}

func loadStyle(path string) (particles.Style, error) {
	t, err := LoadTheme(path)
	if err != nil {
		return particles.Style{}, err
	}
	return t.Style()
}
