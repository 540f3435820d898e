package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
)

// watch re-runs the check whenever the watched file changes. Events are
// debounced because editors often write files in multiple steps, and the
// parent directory is watched rather than the file itself so that atomic
// saves (write to temp, rename over) keep being observed.
func (cmd *CheckCmd) watch(runCtx context.Context, ctx *kong.Context) error {
	target := cmd.File.GetAbsoluteFilename()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	printInfof(ctx.Stdout, "watching %s", cmd.File.Filename)
	cmd.check(runCtx, ctx)

	const debounceDelay = 100 * time.Millisecond
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	checks := make(chan struct{}, 1)
	for {
		select {
		case <-runCtx.Done():
			return runCtx.Err()

		case <-checks:
			_, _ = fmt.Fprintln(ctx.Stdout)
			cmd.check(runCtx, ctx)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case checks <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}
