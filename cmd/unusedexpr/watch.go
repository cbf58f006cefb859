package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mpyw/unusedexpr/internal/report"
)

// defaultDebounceInterval is how long a file must be quiet before it is
// checked again. Editors often write a file in several steps.
const defaultDebounceInterval = 100 * time.Millisecond

// fileWatcher reports changes to a fixed set of files.
//
// The parent directories are watched rather than the files, so a file that
// is replaced by rename (as most editors save) keeps being tracked.
type fileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	interval time.Duration

	// files maps a cleaned absolute path to the argument it came from.
	files map[string]string
}

func newFileWatcher(files []string, logger *slog.Logger) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	fw := &fileWatcher{
		watcher:  watcher,
		logger:   logger,
		interval: defaultDebounceInterval,
		files:    make(map[string]string, len(files)),
	}

	dirs := make(map[string]bool)
	for _, file := range files {
		if file == stdinName {
			watcher.Close()
			return nil, errors.New("standard input cannot be watched")
		}
		abs, err := filepath.Abs(file)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", file, err)
		}
		fw.files[abs] = file

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	return fw, nil
}

// Watch blocks until ctx is done, calling onChange with the arguments of
// the files that changed once they have been quiet for the debounce
// interval. onChange runs on the watching goroutine.
func (fw *fileWatcher) Watch(ctx context.Context, onChange func(files []string)) error {
	var (
		pending = make(map[string]bool)
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			fw.logger.Debug("file watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			file, ok := fw.files[filepath.Clean(event.Name)]
			if !ok || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fw.logger.Debug("file event detected", "file", file, "op", event.Op.String())

			pending[file] = true
			if timer == nil {
				timer = time.NewTimer(fw.interval)
			} else {
				timer.Reset(fw.interval)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for file := range pending {
				changed = append(changed, file)
			}
			clear(pending)
			slices.Sort(changed)
			onChange(changed)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			fw.logger.Error("file watcher error", "error", err)
		}
	}
}

// Close releases the underlying watcher.
func (fw *fileWatcher) Close() error {
	return fw.watcher.Close()
}

// watchFiles checks files once, then again whenever they change, until
// interrupted. Failures are logged and do not stop the watch.
func watchFiles(ctx context.Context, l *linter, files []string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := newFileWatcher(files, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	check := func(files []string) {
		for _, file := range files {
			result, err := l.lintFile(file)
			if err != nil {
				logger.Error("check failed", "error", err)
				continue
			}
			if err := l.print([]report.FileResult{result}); err != nil {
				logger.Error("failed to write results", "error", err)
			}
		}
	}

	check(files)
	logger.Info("watching for changes", "files", len(files))

	return fw.Watch(ctx, check)
}
