package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadDebounce is how long Watch waits after the last change before it
// reloads.
var ReloadDebounce = 100 * time.Millisecond

// Watch reloads the settings file whenever it changes and passes the result
// to fn until ctx is done. The directory is watched rather than the file so
// editors that replace the file by rename are followed. A file that fails to
// load is logged and skipped; fn only sees valid settings.
func Watch(ctx context.Context, path string, fn func(Settings)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}
	name := filepath.Base(abs)
	debounce := ReloadDebounce
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch settings: %w", err)
	}

	go func() {
		defer watcher.Close()
		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case <-timerC:
				timerC = nil
				cfg, err := Load(abs)
				if err != nil {
					Logger().Warn("settings reload failed", zap.String("path", abs), zap.Error(err))
					continue
				}
				Logger().Info("settings reloaded", zap.String("path", abs))
				fn(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				Logger().Warn("settings watcher error", zap.Error(err))
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != name || evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounce)
				}
				timerC = timer.C
			}
		}
	}()
	return nil
}
