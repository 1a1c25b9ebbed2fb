//go:build linux

package shaderwatch

import (
	"fmt"
	"time"

	"github.com/jhenstridge/go-inotify"
)

func (w *Watcher) watch(path string) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		w.logger.Error("Could not create inotify watcher", "err", err)
		return
	}
	defer func(watcher *inotify.Watcher) {
		_ = watcher.Close()
	}(watcher)

	_, err = watcher.Watch(path)
	if err != nil {
		w.logger.Error(fmt.Sprintf("Could not start inotify watcher for %s", path), "err", err)
		return
	}
	w.logger.Info(fmt.Sprintf("Watching %s for changes", path))

	for ev := range watcher.Event {
		switch {
		case ev.Mask&inotify.IN_CLOSE_WRITE != 0:
		case ev.Mask&(inotify.IN_DELETE_SELF|inotify.IN_MOVE_SELF) != 0:
			// replaced by an editor; follow the new file
			time.Sleep(100 * time.Millisecond)
			if _, err := watcher.Watch(path); err != nil {
				w.logger.Error(fmt.Sprintf("Lost track of %s", path), "err", err)
				return
			}
		default:
			continue
		}

		w.logger.Debug(fmt.Sprintf("Reloading shaders due to change in %s", path))
		time.Sleep(100 * time.Millisecond)
		if err := w.reload(); err != nil {
			w.logger.Error("Error reloading shaders", "err", err)
		}
	}
}
