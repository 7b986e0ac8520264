package phraseset

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the set's backing file and reloads the phrases each time
// the file is written. It runs until ctx is cancelled.
//
// A failed reload (e.g. the file mid-rewrite) keeps the previous phrases
// active and is reported through onErr; pass nil to ignore reload errors.
func (s *Set) Watch(ctx context.Context, onErr func(error)) error {
	if s.path == "" {
		return ErrNotReloadable
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often write via rename (atomic save), so catch
			// Create as well as Write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := s.Reload(); err != nil && onErr != nil {
				onErr(err)
			}

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(s.path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onErr != nil {
				onErr(err)
			}
		}
	}
}
