package culling

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/spatial/engine/core"
)

// ReloadFunc is called from the watcher goroutine after every reload attempt.
// On failure scene is nil and the previous scene stays active.
type ReloadFunc func(scene *Scene, err error)

/**
 * @brief Keeps a scene loaded from disk and reloads it whenever the file is
 * written, created or renamed into place.
 */
type Watcher struct {
	path     string
	onReload ReloadFunc

	mutex sync.RWMutex
	scene *Scene

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	stopped  chan struct{}
	closer   sync.Once
}

// NewWatcher loads the scene at path and starts watching its directory.
// onReload may be nil.
func NewWatcher(path string, onReload ReloadFunc) (*Watcher, error) {
	scene, err := LoadScene(path)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file, so the directory is watched instead.
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		onReload: onReload,
		scene:    scene,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.start()
	return w, nil
}

// Scene returns the most recently loaded scene.
func (w *Watcher) Scene() *Scene {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.scene
}

// Close stops the watcher goroutine and waits for it to exit.
func (w *Watcher) Close() error {
	var err error
	w.closer.Do(func() {
		close(w.done)
		<-w.stopped
		err = w.fsnotify.Close()
	})
	return err
}

func (w *Watcher) start() {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("scene watcher: %s", err.Error())

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	scene, err := LoadScene(w.path)
	if err != nil {
		// A writer may truncate before writing, so a half-written file is
		// not fatal.
		if errors.Is(err, core.ErrInvalidArgument) {
			core.LogWarn("scene %s rejected: %s", w.path, err.Error())
		} else {
			core.LogDebug("scene %s not reloaded: %s", w.path, err.Error())
		}
		if w.onReload != nil {
			w.onReload(nil, err)
		}
		return
	}

	w.mutex.Lock()
	w.scene = scene
	w.mutex.Unlock()

	core.LogInfo("scene %s reloaded with %d objects", w.path, len(scene.Objects))
	if w.onReload != nil {
		w.onReload(scene, nil)
	}
}
