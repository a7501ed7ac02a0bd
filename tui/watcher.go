package tui

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const watcherDebounce = 150 * time.Millisecond

// fileChangedMsg reports that the log file was written by someone.
type fileChangedMsg struct{}

// logWatcher watches the folder of the log file and signals when the file
// itself changes. Writes are debounced so one save yields one signal.
type logWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *zap.Logger

	sub  chan struct{}
	done chan struct{}

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
	once   sync.Once
}

// newLogWatcher starts watching the folder holding path. The folder must exist.
func newLogWatcher(path string, logger *zap.Logger) (*logWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &logWatcher{
		path:    filepath.Clean(path),
		watcher: fw,
		logger:  logger,
		sub:     make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *logWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.debounce()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *logWatcher) debounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watcherDebounce, w.signal)
}

// signal never blocks: a pending signal already covers this change.
func (w *logWatcher) signal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.sub <- struct{}{}:
	default:
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *logWatcher) Close() {
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
		}
		close(w.sub)
		w.mu.Unlock()
		w.watcher.Close()
	})
}

// waitForChange blocks until the watcher signals. It returns nil once the
// watcher is closed so the command chain ends.
func waitForChange(sub <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-sub; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}
