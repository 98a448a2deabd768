package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file at path whenever it is written and passes
// the result to onChange. Parse failures are reported through onChange as
// well so the caller can log them and keep the previous config.
// Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename keep triggering reloads.
func Watch(ctx context.Context, path string, onChange func(OmegaConfig, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != abs {
				continue
			}
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			onChange(LoadOmega(abs))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(OmegaConfig{}, fmt.Errorf("config: watcher: %w", err))
		}
	}
}
