// file: internal/watcher/watcher.go
// version: 1.1.0
// guid: 4da2774c-a07d-4eae-bf3e-199a9b7bf6ce

package watcher

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is handed to
// the callback. OCR collaborators tend to write extracts incrementally.
const DefaultDebounce = 2 * time.Second

// Callback is invoked once per settled text file with its path.
type Callback func(path string)

// Watcher monitors a drop directory for OCR text extracts and invokes a
// callback per file after writes settle.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	debounce  time.Duration
	callback  Callback

	stop    chan struct{}
	stopped chan struct{}

	mu      sync.Mutex
	timers  map[string]*time.Timer
	running bool
}

// New creates a Watcher. Pass 0 for debounce to use DefaultDebounce.
func New(callback Callback, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		debounce: debounce,
		callback: callback,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
		timers:   make(map[string]*time.Timer),
	}
}

// Start begins watching dir. It is safe to call only once.
func (w *Watcher) Start(dir string) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return err
	}
	w.fsWatcher = fsw
	w.dir = dir

	go w.eventLoop()
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()

	close(w.stop)
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
	<-w.stopped
}

func (w *Watcher) eventLoop() {
	defer close(w.stopped)

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ERROR] watcher: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}
	if !IsTextFile(event.Name) {
		return
	}
	w.scheduleFile(event.Name)
}

func (w *Watcher) scheduleFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		log.Printf("[INFO] watcher: processing %s", path)
		if w.callback != nil {
			w.callback(path)
		}
	})
}

// IsTextFile reports whether name looks like an OCR text extract.
func IsTextFile(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".txt"
}
