package cuemerge

import (
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Option configures a Processor.
//
// Options use the functional options pattern:
//
//	p := cuemerge.NewProcessor(
//	    cuemerge.WithMerger(cuemerge.Sox{}),
//	    cuemerge.WithProbeTimeout(time.Minute),
//	)
type Option func(*processorOptions)

// processorOptions holds Processor configuration.
type processorOptions struct {
	durations    DurationSource
	merger       Merger // nil: skip audio concatenation
	muxer        Muxer  // nil: skip container muxing
	meta         Metadata
	probeLimit   int
	probeTimeout time.Duration // 0: no timeout
	logger       *slog.Logger
	dryRun       bool
}

func defaultOptions() *processorOptions {
	return &processorOptions{
		durations:  FFprobe{},
		probeLimit: runtime.NumCPU(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDurationSource replaces the default ffprobe-backed duration source.
//
// Tests use this to run the pipeline hermetically:
//
//	p := cuemerge.NewProcessor(cuemerge.WithDurationSource(fakeProber))
func WithDurationSource(ds DurationSource) Option {
	return func(o *processorOptions) { o.durations = ds }
}

// WithMerger enables audio concatenation after the chapter files are
// written. Without a merger the pipeline stops at chapter generation.
func WithMerger(m Merger) Option {
	return func(o *processorOptions) { o.merger = m }
}

// WithMuxer enables container muxing of the merged audio with the chapter
// file the muxer's ChapterFormat selects. Requires a merger.
func WithMuxer(m Muxer) Option {
	return func(o *processorOptions) { o.muxer = m }
}

// WithMetadata sets the container tags (title, artist, cover art) applied
// by the muxer.
func WithMetadata(meta Metadata) Option {
	return func(o *processorOptions) { o.meta = meta }
}

// WithProbeLimit bounds how many discs are probed concurrently.
// Defaults to runtime.NumCPU(). Values below 1 mean unlimited.
func WithProbeLimit(n int) Option {
	return func(o *processorOptions) { o.probeLimit = n }
}

// WithProbeTimeout bounds the total time spent measuring durations. When
// it expires the run aborts before combining; no output is written.
func WithProbeTimeout(d time.Duration) Option {
	return func(o *processorOptions) { o.probeTimeout = d }
}

// WithLogger sets the structured logger for pipeline progress. The
// default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *processorOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDryRun stops the pipeline before anything touches disk: sheets are
// parsed, durations measured, chapters combined and rendered, but no
// files are written and no external merge/mux runs.
func WithDryRun() Option {
	return func(o *processorOptions) { o.dryRun = true }
}
