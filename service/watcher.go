package service

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/constants"
)

// ScriptWatcher pushes file-change notifications into the session's
// function cache. The cache owner constructs one watcher per session and
// tears it down with Stop; the core never polls or diffs file content.
type ScriptWatcher struct {
	watcher      *fsnotify.Watcher
	cache        domain.FunctionCache
	onInvalidate func(path string)
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewScriptWatcher creates a watcher bound to the given cache
func NewScriptWatcher(cache domain.FunctionCache) (*ScriptWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &ScriptWatcher{
		watcher: watcher,
		cache:   cache,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// SetInvalidateCallback registers a callback invoked after each cache
// invalidation, for diagnostics or editor refresh
func (w *ScriptWatcher) SetInvalidateCallback(fn func(path string)) {
	w.onInvalidate = fn
}

// Watch adds recursive watches for every directory under root, skipping
// the standard excluded directories
func (w *ScriptWatcher) Watch(root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	return filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		for _, excluded := range constants.DefaultExcludedDirs {
			if d.Name() == excluded {
				return filepath.SkipDir
			}
		}
		return w.watcher.Add(path)
	})
}

// Start begins processing file system events
func (w *ScriptWatcher) Start() {
	w.wg.Add(1)
	go w.processEvents()
}

// Stop stops the watcher and waits for the event loop to exit
func (w *ScriptWatcher) Stop() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *ScriptWatcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("qmllink: watch error: %v", err)
		}
	}
}

// handleEvent invalidates the cache entry for any content change observed
// on a script file. Invalidation is last-write-wins; a stale repopulation
// racing an invalidation only wastes work, never corrupts state.
func (w *ScriptWatcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, constants.ScriptExtension) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}
	w.cache.Invalidate(abs)
	if w.onInvalidate != nil {
		w.onInvalidate(abs)
	}
}
