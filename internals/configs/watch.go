package configs

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
)

// WatchSettings reloads path on every write and calls onChange with the new settings.
// A failed reload is logged and the previous settings stay active.
// It runs until ctx is cancelled.
func WatchSettings(ctx context.Context, path string, onChange func(*Settings)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	log.Printf("[INFO] settings: watching %s", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// editor sering save via rename → tangkap Create juga
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			s, err := LoadSettings(path)
			if err != nil {
				log.Printf("[ERROR] settings: reload gagal, tetap pakai settings lama: %v", err)
				continue
			}

			log.Printf("[INFO] settings: reloaded %s (default_threshold=%v)", path, s.DefaultThreshold)
			onChange(s)

			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[ERROR] settings: watcher error: %v", err)
		}
	}
}
