package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/simonhull/cuemerge"
)

// settleDelay is how long a newly created book directory must sit quiet
// before it is processed. Rips and downloads land file by file.
const settleDelay = 30 * time.Second

// watchAndProcess watches inDir for new top-level subdirectories and runs
// the processor on each once it has settled. Results land under
// outDir/<book name>. Runs until the context is cancelled.
func watchAndProcess(ctx context.Context, proc *cuemerge.Processor, inDir, outDir string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(inDir); err != nil {
		return err
	}
	logger.Info("watching for new books", "dir", inDir)

	ready := make(chan string)
	pending := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) || filepath.Dir(event.Name) != filepath.Clean(inDir) {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil || !info.IsDir() {
				continue
			}
			dir := event.Name
			logger.Debug("new book directory", "dir", dir)
			if timer, ok := pending[dir]; ok {
				timer.Reset(settleDelay)
				continue
			}
			pending[dir] = time.AfterFunc(settleDelay, func() {
				select {
				case ready <- dir:
				case <-ctx.Done():
				}
			})

		case dir := <-ready:
			delete(pending, dir)
			out := filepath.Join(outDir, filepath.Base(dir))
			logger.Info("processing book", "in", dir, "out", out)
			result, err := proc.Process(ctx, dir, out)
			if err != nil {
				logger.Error("processing failed", "dir", dir, "error", err)
				continue
			}
			logger.Info("book processed",
				"dir", dir,
				"chapters", result.Chapters,
				"total", cuemerge.ClockString(result.TotalMS))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
