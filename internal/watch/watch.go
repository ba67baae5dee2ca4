// Package watch reports changes to source files, coalescing bursts of
// filesystem events into a single notification.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"

	"ssac/internal/compiler"
)

var log = commonlog.GetLogger("ssac.watch")

// Watcher watches source files and directories of source files
type Watcher struct {
	w        *fsnotify.Watcher
	debounce time.Duration

	// files restricts a watched directory to single files added by path
	files map[string]bool
	dirs  map[string]bool
}

// New creates a watcher that waits until no event arrived for debounce
// before reporting
func New(debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		w:        w,
		debounce: debounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
	}, nil
}

// Add watches a source file or every source file of a directory. Files are
// watched through their directory so editors that replace the file on save
// keep being observed.
func (w *Watcher) Add(path string) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	dir := path
	if info.IsDir() {
		w.dirs[path] = true
	} else {
		w.files[path] = true
		dir = filepath.Dir(path)
	}

	log.Debugf("watching %s", path)
	return w.w.Add(dir)
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.w.Close()
}

// Run calls onChange with the sorted set of changed files after every burst
// of changes, until ctx is done or the watcher is closed. onChange runs on the
// caller's goroutine; events arriving meanwhile are queued.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	pending := make(map[string]bool)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			pending[ev.Name] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			log.Warningf("watch error: %s", err)

		case <-fire:
			fire = nil
			paths := make([]string, 0, len(pending))
			for path := range pending {
				paths = append(paths, path)
			}
			sort.Strings(paths)
			clear(pending)
			onChange(paths)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	if w.files[ev.Name] {
		return true
	}
	return w.dirs[filepath.Dir(ev.Name)] && filepath.Ext(ev.Name) == compiler.SourceExt
}
