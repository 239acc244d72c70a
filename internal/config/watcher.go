package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the event bursts most editors produce when
// saving a file.
const defaultDebounce = 100 * time.Millisecond

// Watcher reloads the config file when it changes on disk.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
}

// Watch starts watching the config file at path. onReload is called from
// the watcher goroutine with each successfully reloaded config; a reload
// that fails to parse is skipped, keeping the last good config in effect.
func Watch(path string, onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors typically replace the
	// file by rename, which would drop a watch on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		fw:       fw,
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}
	go w.run(onReload)
	return w, nil
}

func (w *Watcher) run(onReload func(*Config)) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				// Drain a tick that fired between events so the reset
				// starts a fresh debounce window instead of delivering
				// the stale tick early.
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			if cfg, err := Load(w.path); err == nil {
				onReload(cfg)
			}

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
