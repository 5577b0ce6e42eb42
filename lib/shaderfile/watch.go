package shaderfile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// settle gives editors a moment to finish writing before the file is read
const settle = 100 * time.Millisecond

// Watch calls onChange whenever the shader file at path is rewritten or
// replaced, until ctx is done. The parent directory is watched rather than
// the file so that editors which save by renaming are noticed too.
func Watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create inotify watcher: %w", err)
	}

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	if _, err = watcher.Watch(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("could not watch %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := watcher.Close(); err != nil {
					slog.Error(fmt.Sprintf("inotify error: %s", err), slog.String("module", "shaderfile"))
				}
				return
			case ev, ok := <-watcher.Event:
				if !ok {
					// the reader stopped on its own; Close reports why
					if err := watcher.Close(); err != nil {
						slog.Error(fmt.Sprintf("inotify error: %s", err), slog.String("module", "shaderfile"))
					}
					return
				}
				if !isRewrite(ev.Mask) || filepath.Base(ev.Name) != name {
					continue
				}
				slog.Debug(fmt.Sprintf("%s changed on disk", path), slog.String("module", "shaderfile"))
				time.Sleep(settle)
				onChange()
			}
		}
	}()
	return nil
}

func isRewrite(mask inotify.Mask) bool {
	return mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO) != 0
}
