// Package histfile persists a readline history store to disk and,
// optionally, watches the file so multiple instances sharing one history
// pick up each other's writes.
//
// The on-disk format is the history package's opaque state buffer; this
// package only adds the file handling: atomic writes through a uniquely
// named temp file, and change notification through fsnotify.
package histfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/dshills/tuikit/internal/logging"
	"github.com/dshills/tuikit/readline/history"
)

// Save writes the store's state to path atomically: the encoded buffer
// goes to a uniquely named temp file in the same directory, then replaces
// path by rename.
func Save(store *history.Store, path string) error {
	buf, err := store.Encode()
	if err != nil {
		return fmt.Errorf("histfile: encoding: %w", err)
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, buf, 0o600); err != nil {
		return fmt.Errorf("histfile: writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("histfile: replacing %s: %w", path, err)
	}
	return nil
}

// Load restores the store from path. A missing file leaves the store
// untouched and is not an error; a malformed file fails without touching
// the store.
func Load(store *history.Store, path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("histfile: reading %s: %w", path, err)
	}
	if err := store.Decode(buf); err != nil {
		return fmt.Errorf("histfile: %s: %w", path, err)
	}
	return nil
}

// Watcher reports external rewrites of a history file. Notifications are
// coalesced: at most one is pending at a time, and the caller reloads from
// its own event loop, keeping the widgets single-threaded.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	log     *logging.Logger
}

// Watch starts watching path's directory for rewrites of the file. The
// directory is watched rather than the file itself because Save replaces
// the file by rename, which drops a direct watch.
func Watch(path string, log *logging.Logger) (*Watcher, error) {
	if log == nil {
		log = logging.Discard
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("histfile: resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("histfile: watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("histfile: watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fsw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     log.WithComponent("histfile"),
	}
	go w.loop()
	return w, nil
}

// Changes delivers one signal per coalesced batch of external rewrites.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("history file changed: %s", ev.Op)
			select {
			case w.changes <- struct{}{}:
			default:
				// A reload is already pending.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}
