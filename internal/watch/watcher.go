// Package watch rescans a directory whenever its content changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/harrison/seqparser/internal/browse"
)

// DefaultDebounce is the default quiet period before a rescan
const DefaultDebounce = 200 * time.Millisecond

// Logger receives watcher diagnostics.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogWarn(string)  {}

// Handler receives the result of every scan. Returning an error stops Run.
type Handler func(*browse.Result) error

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period that coalesces bursts of changes,
// such as a renderer writing many frames. Negative values are treated as 0.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d < 0 {
			d = 0
		}
		w.debounce = d
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watcher watches one directory, without recursion, and browses it again
// after changes settle.
type Watcher struct {
	fsw      *fsnotify.Watcher
	browser  *browse.Browser
	dir      string
	debounce time.Duration
	logger   Logger
	rescan   chan struct{}

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// New creates a Watcher for dir. The directory must exist.
func New(dir string, browser *browse.Browser, opts ...Option) (*Watcher, error) {
	dir = filepath.Clean(dir)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, browse.NewPathError("watch", dir, err)
	}
	if !info.IsDir() {
		return nil, &browse.PathError{Op: "watch", Path: dir, Kind: browse.ErrNotADirectory}
	}

	if browser == nil {
		browser, _ = browse.NewBrowser(nil)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, browse.NewPathError("watch", dir, err)
	}

	w := &Watcher{
		fsw:      fsw,
		browser:  browser,
		dir:      dir,
		debounce: DefaultDebounce,
		logger:   nopLogger{},
		rescan:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run browses the directory once, then again after every settled change,
// passing each result to handle. It returns nil when ctx is cancelled, the
// handler's error, or the browse error when the directory becomes
// unreadable. Run closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	defer w.Close()

	if err := w.scan(handle); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if relevant(event) {
				w.logger.LogDebug(fmt.Sprintf("watch %s: %s", w.dir, event))
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.LogWarn(fmt.Sprintf("watch %s: %v", w.dir, err))
		case <-w.rescan:
			if err := w.scan(handle); err != nil {
				return err
			}
		}
	}
}

func (w *Watcher) scan(handle Handler) error {
	result, err := w.browser.Browse(w.dir)
	if err != nil {
		return err
	}
	return handle(result)
}

// relevant drops attribute-only changes, which never alter a listing.
func relevant(event fsnotify.Event) bool {
	return event.Op != fsnotify.Chmod && event.Op != 0
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.rescan <- struct{}{}:
		default:
			// a rescan is already pending
		}
	})
}

// Close stops the watcher and releases resources. It is safe to call more
// than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.fsw.Close()
}
