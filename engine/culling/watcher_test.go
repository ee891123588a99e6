package culling

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const watchedScene = `
[[box]]
name = "first"
min = [0.0, 0.0, 0.0]
max = [1.0, 1.0, 1.0]
`

func writeScene(t *testing.T, path, data string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("Rename: %v", err)
	}
}

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	writeScene(t, path, watchedScene)

	reloads := make(chan *Scene, 16)
	w, err := NewWatcher(path, func(scene *Scene, err error) {
		if err != nil {
			return
		}
		select {
		case reloads <- scene:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: unexpected error %v", err)
	}
	defer w.Close()

	if got := len(w.Scene().Objects); got != 1 {
		t.Fatalf("NewWatcher: expected 1 object, got %d", got)
	}

	writeScene(t, path, watchedScene+`
[[sphere]]
name = "second"
center = [0.0, 0.0, -5.0]
radius = 1.0
`)

	timeout := time.After(5 * time.Second)
	for {
		select {
		case scene := <-reloads:
			if len(scene.Objects) == 2 {
				if got := len(w.Scene().Objects); got != 2 {
					t.Errorf("Scene: expected the reloaded scene with 2 objects, got %d", got)
				}
				return
			}
		case <-timeout:
			t.Fatalf("watcher did not reload the scene")
		}
	}
}

func TestWatcherKeepsSceneOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	writeScene(t, path, watchedScene)

	failures := make(chan error, 16)
	w, err := NewWatcher(path, func(scene *Scene, err error) {
		if err == nil {
			return
		}
		select {
		case failures <- err:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: unexpected error %v", err)
	}
	defer w.Close()

	writeScene(t, path, "[[sphere]]\nradius = -3.0\n")

	select {
	case <-failures:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not report the invalid scene")
	}
	if got := len(w.Scene().Objects); got != 1 {
		t.Errorf("Scene: expected the previous scene to stay active, got %d objects", got)
	}
}

func TestWatcherLifecycle(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing.toml"), nil); err == nil {
		t.Errorf("NewWatcher missing file: expected an error")
	}

	path := filepath.Join(t.TempDir(), "scene.toml")
	writeScene(t, path, watchedScene)
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher: unexpected error %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: unexpected error %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close twice: unexpected error %v", err)
	}
}
