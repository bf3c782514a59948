package cuemerge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/cuemerge/internal/chapters"
	"github.com/simonhull/cuemerge/internal/combine"
	"github.com/simonhull/cuemerge/internal/cue"
	"github.com/simonhull/cuemerge/internal/discovery"
)

// Output file names written under the output directory.
const (
	CombinedCueName = "combined.cue"
	FFMetadataName  = "chapters.ffmetadata"
	ClockListName   = "chapters.txt"
	AudiobookName   = "audiobook.m4b"
)

// Processor runs the whole pipeline: discover per-disc CUE sheets, parse
// them, measure disc durations, combine everything into one chapter
// timeline, render the chapter files, and optionally merge and mux the
// audio.
//
// A Processor is safe for concurrent use; each Process call operates on
// its own freshly constructed data.
type Processor struct {
	opts *processorOptions
}

// NewProcessor creates a Processor. With no options it uses ffprobe for
// durations, probes discs concurrently, writes only the chapter files,
// and logs nothing.
func NewProcessor(opts ...Option) *Processor {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Processor{opts: options}
}

// Result reports what a Process run produced. Paths are empty for stages
// that did not run (dry runs produce no paths at all).
type Result struct {
	// Sheets is the number of discs merged; Chapters the number of
	// chapters in the combined timeline.
	Sheets   int
	Chapters int

	// TotalMS is the combined duration of all discs in milliseconds.
	TotalMS int64

	// Written chapter artifacts.
	CombinedCue string
	FFMetadata  string
	ClockList   string

	// MergedAudio and Audiobook are set when a merger/muxer ran.
	MergedAudio string
	Audiobook   string
}

// Process runs the pipeline for the book under inputDir, writing outputs
// to outDir.
//
// Any fatal error aborts the run before any file is written: all
// rendering happens up front, and only then does anything touch disk.
func (p *Processor) Process(ctx context.Context, inputDir, outDir string) (*Result, error) {
	log := p.opts.logger

	cueFiles, err := discovery.CueFiles(inputDir)
	if err != nil {
		return nil, fmt.Errorf("discover cue sheets: %w", err)
	}
	if len(cueFiles) == 0 {
		return nil, fmt.Errorf("%s: %w", inputDir, ErrNoDiscs)
	}
	log.Info("found cue sheets", "count", len(cueFiles))

	sheets := make([]*CueSheet, len(cueFiles))
	audioFiles := make([]string, len(cueFiles))
	for i, path := range cueFiles {
		sheet, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		sheets[i] = sheet
		audioFiles[i] = discovery.AudioPath(path, sheet.File)
		log.Debug("parsed sheet", "path", path, "tracks", len(sheet.Tracks))
	}

	durations, err := p.measureAll(ctx, sheets, audioFiles)
	if err != nil {
		return nil, err
	}

	offsets, err := combine.Offsets(durations)
	if err != nil {
		return nil, err
	}
	totalMS := combine.Total(durations)

	cs, err := combine.Combine(sheets, offsets)
	if err != nil {
		return nil, err
	}
	log.Info("combined discs", "chapters", len(cs.Chapters), "total_ms", totalMS)

	// Render everything before writing anything: a fatal error must not
	// leave partial output behind.
	combinedCue, err := cue.RenderCombined(sheets, offsets)
	if err != nil {
		return nil, err
	}
	ffmeta, err := chapters.FFMetadata(cs, totalMS)
	if err != nil {
		return nil, err
	}
	clock, err := chapters.ClockList(cs)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Sheets:   len(sheets),
		Chapters: len(cs.Chapters),
		TotalMS:  totalMS,
	}
	if p.opts.dryRun {
		log.Info("dry run: skipping output")
		return result, nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	outputs := []struct {
		name string
		text string
		dest *string
	}{
		{CombinedCueName, combinedCue, &result.CombinedCue},
		{FFMetadataName, ffmeta, &result.FFMetadata},
		{ClockListName, clock, &result.ClockList},
	}
	for _, out := range outputs {
		path := filepath.Join(outDir, out.name)
		if err := os.WriteFile(path, []byte(out.text), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", out.name, err)
		}
		*out.dest = path
		log.Debug("wrote", "path", path)
	}

	if p.opts.merger == nil {
		return result, nil
	}
	merged := filepath.Join(outDir, "combined"+mergedExt(audioFiles))
	log.Info("merging audio", "inputs", len(audioFiles), "output", merged)
	if err := p.opts.merger.Merge(ctx, audioFiles, merged); err != nil {
		return nil, fmt.Errorf("merge audio: %w", err)
	}
	result.MergedAudio = merged

	if p.opts.muxer == nil {
		return result, nil
	}
	chaptersFile := result.FFMetadata
	if p.opts.muxer.ChapterFormat() == ChaptersClock {
		chaptersFile = result.ClockList
	}
	book := filepath.Join(outDir, AudiobookName)
	log.Info("muxing audiobook", "output", book)
	if err := p.opts.muxer.Mux(ctx, merged, chaptersFile, book, p.opts.meta); err != nil {
		return nil, fmt.Errorf("mux audiobook: %w", err)
	}
	result.Audiobook = book

	return result, nil
}

// measureAll probes every disc's duration concurrently but returns the
// results in disc order. A failed probe falls back to the sheet's
// declared REM DURATION when present; otherwise the whole run fails,
// since guessing a disc length would corrupt every later chapter.
func (p *Processor) measureAll(ctx context.Context, sheets []*CueSheet, audioFiles []string) ([]float64, error) {
	if p.opts.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.probeTimeout)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	if p.opts.probeLimit > 0 {
		g.SetLimit(p.opts.probeLimit)
	}

	durations := make([]float64, len(audioFiles))
	for i, path := range audioFiles {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			seconds, err := p.opts.durations.Measure(ctx, path)
			if err != nil {
				if declared, ok := declaredDuration(sheets[i]); ok {
					p.opts.logger.Warn("probe failed, using declared duration",
						"path", path, "seconds", declared, "cause", err)
					durations[i] = declared
					return nil
				}
				return err
			}
			durations[i] = seconds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return durations, nil
}

// declaredDuration reads a disc length in seconds from the sheet's
// REM DURATION comment, the degraded path when probing fails.
func declaredDuration(sheet *CueSheet) (float64, bool) {
	value, ok := sheet.Rem["DURATION"]
	if !ok {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || seconds <= 0 {
		return 0, false
	}
	return seconds, true
}

// mergedExt picks the merged file's extension from the first input so a
// FLAC book merges to combined.flac and an MP3 book to combined.mp3.
func mergedExt(audioFiles []string) string {
	if len(audioFiles) == 0 {
		return ".flac"
	}
	if ext := filepath.Ext(audioFiles[0]); ext != "" {
		return ext
	}
	return ".flac"
}
