package cmd

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/pane/pkg/layout"
)

// fileWatcher reports changes to a fixed set of files. It watches their
// directories so that editors which save by renaming a new file into place
// are still seen.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
}

func newFileWatcher(paths ...string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &fileWatcher{watcher: w, files: make(map[string]bool)}
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		fw.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, err
		}
		dirs[dir] = true
	}
	return fw, nil
}

// run calls fn with the path of each changed file until ctx is done or the
// watcher is closed. Watcher errors are logged and do not stop the loop.
func (fw *fileWatcher) run(ctx context.Context, fn func(path string)) error {
	defer fw.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !fw.files[name] {
				continue
			}
			fn(name)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			layout.Logger().Warn("file watcher", "err", err)
		}
	}
}
