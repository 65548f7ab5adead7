package rules

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the TOML rules file at path whenever it changes, until
// ctx is canceled. The parent directory is watched rather than the
// file itself so that editors and config-management tools that replace
// the file atomically keep triggering reloads.
//
// The initial load happens synchronously before Watch returns. Reload
// failures after that are reported through onErr when non-nil and
// otherwise dropped; the registry keeps its last good state either way.
func (r *Registry) Watch(ctx context.Context, path string, onErr func(error)) error {
	if err := r.LoadFile(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating rules file watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	report := func(err error) {
		if onErr != nil && err != nil {
			onErr(err)
		}
	}

	go func() {
		defer watcher.Close()
		base := filepath.Base(path)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				report(r.LoadFile(path))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				report(err)
			}
		}
	}()
	return nil
}
