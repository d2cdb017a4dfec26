package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangeScript
)

// Change is one debounced edit to a tuning file or AI script. Name is relative
// to the prefabs root, e.g. "combos.yaml" or "scripts/chase.tengo".
type Change struct {
	Name string
	Kind ChangeKind
}

// Watcher reports edits under the prefabs directories for hot reload.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll drains pending changes without blocking. Safe to call every frame.
func (w *Watcher) Poll() []Change {
	if w == nil {
		return nil
	}
	var out []Change
	for {
		select {
		case c := <-w.Events:
			out = append(out, c)
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := classifyChange(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classifyChange(p string) (Change, bool) {
	base := filepath.Base(p)
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return Change{Name: base, Kind: ChangeSpec}, true
	case ".tengo":
		return Change{Name: "scripts/" + base, Kind: ChangeScript}, true
	}
	return Change{}, false
}
