package backend

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DataWatcher calls OnChange when the watched file is written or replaced.
// Bursts of events (e.g. an editor writing a temp file then renaming it)
// within the debounce delay result in a single call.
type DataWatcher struct {
	OnChange func()

	path    string
	delay   time.Duration
	watcher *fsnotify.Watcher
}

// NewDataWatcher watches the directory containing path, since many editors
// save by replacing the file, which would drop a watch on the file itself.
func NewDataWatcher(path string, delay time.Duration) (*DataWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &DataWatcher{path: abs, delay: delay, watcher: w}, nil
}

// Start begins delivering change notifications until ctx is done.
func (d *DataWatcher) Start(ctx context.Context) {
	go d.run(ctx)
}

func (d *DataWatcher) run(ctx context.Context) {
	defer d.watcher.Close()
	timer := time.NewTimer(d.delay)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case ev, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != d.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			timer.Reset(d.delay)
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("data file watcher error: %v", err)
		case <-timer.C:
			if d.OnChange != nil {
				d.OnChange()
			}
		}
	}
}
