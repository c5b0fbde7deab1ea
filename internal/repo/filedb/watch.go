package filedb

import (
	"context"
	"path/filepath"

	errorsUtils "github.com/Egor213/LogViewer/pkg/errors"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watch enables the dates cache and drops it whenever a daily log file
// appears, disappears or is renamed. It returns once the watcher is running;
// the watcher stops when ctx is done.
func (r *LogRepo) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := watcher.Add(r.dir); err != nil {
		watcher.Close()
		return errorsUtils.WrapPathErr(err)
	}

	r.mu.Lock()
	r.caching = true
	r.gen++
	r.dates = nil
	r.mu.Unlock()

	go r.watchLoop(ctx, watcher)

	log.WithField("dir", r.dir).Info("Watching log directory")
	return nil
}

func (r *LogRepo) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		r.mu.Lock()
		r.caching = false
		r.gen++
		r.dates = nil
		r.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if r.dateOf(filepath.Base(ev.Name)) == "" {
				continue
			}
			log.WithFields(log.Fields{
				"file": ev.Name,
				"op":   ev.Op.String(),
			}).Debug("Log directory changed")
			r.invalidate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("Log directory watcher error")
			r.invalidate()
		}
	}
}
