package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Update is one reload result from Watch.
type Update struct {
	Config Config
	Err    error // Read, parse or validation failure; Config is then unusable
}

// Watch reloads path whenever it is written and delivers the validated
// result. Environment overrides are applied on every reload. The channel
// closes when ctx is done or the watcher fails.
func Watch(ctx context.Context, path string) (<-chan Update, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", path, err)
	}

	out := make(chan Update)

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				select {
				case out <- reload(path):
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

func reload(path string) Update {
	cfg, err := LoadFile(path)
	if err == nil {
		err = ApplyEnv(&cfg)
	}
	if err == nil {
		err = Validate(cfg)
	}
	return Update{Config: cfg, Err: err}
}
