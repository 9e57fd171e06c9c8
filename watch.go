// File: uci/watch.go
package uci

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// WatchOptions configures file watching behavior
type WatchOptions struct {
	// PollInterval for file stat checks (minimum 100ms)
	PollInterval time.Duration

	// Debounce duration to avoid rapid reloads
	Debounce time.Duration
}

// DefaultWatchOptions returns sensible defaults for file watching
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		PollInterval: DefaultPollInterval,
		Debounce:     DefaultDebounce,
	}
}

// watcher manages the watch state of a single config file
type watcher struct {
	mu            sync.Mutex
	cancel        context.CancelFunc
	events        chan string
	closed        bool
	lastModTime   time.Time
	lastSize      int64
	debounceTimer *time.Timer
}

// Watch starts polling the named config's backing file and returns a
// channel of change notifications. A detected change force-reloads the
// config after the debounce period and sends the config name; a failed
// reload sends "reload_error:<err>", a deleted file "file_deleted".
// Watching an already watched config returns the existing channel.
func (t *Tree) Watch(name string, opts WatchOptions) (<-chan string, error) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.PollInterval < MinPollInterval {
		opts.PollInterval = MinPollInterval
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	t.mu.Lock()
	if w, ok := t.watchers[name]; ok {
		t.mu.Unlock()
		return w.events, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher{
		cancel: cancel,
		events: make(chan string, 10),
	}
	path := filepath.Join(t.dir, name)
	if info, err := os.Stat(path); err == nil {
		w.lastModTime = info.ModTime()
		w.lastSize = info.Size()
	}
	t.watchers[name] = w
	t.mu.Unlock()

	go w.watchLoop(ctx, t, name, path, opts)
	return w.events, nil
}

// StopWatch stops watching the named config and closes its channel.
func (t *Tree) StopWatch(name string) {
	t.mu.Lock()
	w, ok := t.watchers[name]
	if ok {
		delete(t.watchers, name)
	}
	t.mu.Unlock()

	if !ok {
		return
	}
	w.cancel()
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.mu.Unlock()
}

// watchLoop is the main file watching loop
func (w *watcher) watchLoop(ctx context.Context, t *Tree, name, path string, opts WatchOptions) {
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.checkAndReload(t, name, path, opts.Debounce)
		}
	}
}

// checkAndReload checks if the file changed and schedules a reload
func (w *watcher) checkAndReload(t *Tree, name, path string, debounce time.Duration) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			w.notify("file_deleted")
		}
		return
	}

	if info.ModTime().Equal(w.lastModTime) && info.Size() == w.lastSize {
		return
	}
	w.lastModTime = info.ModTime()
	w.lastSize = info.Size()

	// Debounce rapid changes
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(debounce, func() {
		if err := t.LoadConfig(name, true); err != nil {
			w.notify(fmt.Sprintf("reload_error:%v", err))
			return
		}
		w.notify(name)
	})
	w.mu.Unlock()
}

// notify sends a change notification without blocking. A debounce
// callback may still be running when the watch loop exits, so the send
// and the close are serialized under w.mu.
func (w *watcher) notify(event string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.events <- event:
	default:
		// Channel full, skip
	}
}

// close marks the watcher terminated and closes its channel
func (w *watcher) close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	close(w.events)
}
