package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce coalesces the burst of events editors emit on save.
var watchDebounce = 200 * time.Millisecond

// Watch runs Generate once, then again after every change to opts.Input
// until ctx is cancelled. Runs happen one at a time on the calling goroutine;
// a failed run is reported and the watch continues.
func (m *GenerateManager) Watch(ctx context.Context, opts GenerateOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fail(m.logger, wrapWithSentinel(ErrWatchSourceFailed, err,
			fmt.Sprintf("failed to create watcher: %v", err)), "Failed to watch input")
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory so editors that save by renaming are still seen.
	target := filepath.Clean(opts.Input)
	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return fail(m.logger, wrapWithSentinelAndContext(ErrWatchSourceFailed, err,
			fmt.Sprintf("failed to watch %s: %v", dir, err),
			map[string]any{"input": opts.Input, "component": "watcher"}), "Failed to watch input")
	}

	m.logger.Info("Watching for changes", zap.String("input", opts.Input))
	m.generateAndReport(opts)
	Info(fmt.Sprintf("Watching %s (Ctrl+C to stop)", opts.Input))

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || (!event.Has(fsnotify.Write) && !event.Has(fsnotify.Create)) {
				continue
			}
			m.logger.Debug("Input changed", zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			m.generateAndReport(opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

// generateAndReport runs one watch iteration. Failures are shown and the
// watch goes on.
func (m *GenerateManager) generateAndReport(opts GenerateOptions) {
	if err := m.Generate(opts); err != nil {
		reportError(err)
	}
}
