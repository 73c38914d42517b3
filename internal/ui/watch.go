package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events a single SQLite commit produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports writes to a database file and its journal/WAL siblings.
type Watcher struct {
	fs       *fsnotify.Watcher
	base     string
	debounce time.Duration
}

// NewWatcher watches the directory containing path. Events on sibling files
// sharing the database name (-journal, -wal) count as changes too.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{fs: fs, base: filepath.Base(abs), debounce: debounce}, nil
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return strings.HasPrefix(filepath.Base(ev.Name), w.base)
}

// Next returns a command that blocks until the database changes, then reports
// [MsgStoreChanged]. It returns nil once the watcher is closed.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if !w.matches(ev) {
					continue
				}
				w.settle()
				return storeChangedMsg()
			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				return watchFailedMsg(err)
			}
		}
	}
}

// settle drains events until the directory has been quiet for the debounce interval.
func (w *Watcher) settle() {
	timer := time.NewTimer(w.debounce)
	defer timer.Stop()

	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			return
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	if err := w.fs.Close(); err != nil && !errors.Is(err, fsnotify.ErrClosed) {
		return err
	}
	return nil
}
