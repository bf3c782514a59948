// Package cuemerge converts per-disc CUE sheets of a multi-disc audiobook
// into a single, globally consistent chapter timeline.
//
// A spoken-word rip usually arrives as one audio file plus one CUE sheet
// per disc. To build a single audiobook file the discs are concatenated,
// which means every disc after the first needs its chapter times shifted
// by the total length of everything before it. cuemerge does the numeric
// heart of that job (parsing, offset arithmetic, merging, rendering)
// bit-exactly, and delegates the media work (probing, concatenating,
// muxing) to narrow collaborator interfaces.
//
// # Quick Start
//
// The high-level pipeline processes a book directory end to end:
//
//	p := cuemerge.NewProcessor(
//	    cuemerge.WithMerger(cuemerge.Sox{}),
//	    cuemerge.WithMuxer(cuemerge.FFmpegMux{}),
//	)
//	result, err := p.Process(ctx, "./A New Earth", "./out")
//
// The stages are also usable directly:
//
//	sheet, err := cuemerge.ParseFile("CD1/disc1.cue")
//	offsets, err := cuemerge.ComputeOffsets([]float64{3600.0, 1800.5})
//	combined, err := cuemerge.Combine(sheets, offsets)
//	text, err := cuemerge.RenderFFMetadata(combined, totalMS)
//
// # Time handling
//
// CUE timecodes count 75 frames per second (the CD audio unit). All
// internal arithmetic is integer milliseconds: frame-to-millisecond
// conversion rounds half-up, each disc duration is rounded to the nearest
// millisecond before offsets accumulate, and a canonical timecode always
// survives a round trip through milliseconds. The two renderers own their
// own precision rules: the FFmetadata format carries raw millisecond
// START/END fields on a 1/1000 timebase, the clock-time list formats
// HH:MM:SS.mmm.
//
// # Error Handling
//
// Failures are typed: [SyntaxError] for malformed CUE text (with file and
// line), [TimecodeError] for unparseable timecodes, [DurationError] for
// probe failures, [CountMismatchError], [ErrNoDiscs], and
// [ErrEmptyChapters] for invariant violations. A fatal error aborts the
// run before any output file is written; a truncated chapter file is
// worse than none.
//
// # Concurrency
//
// Parsing, combining, and rendering are pure functions of their inputs.
// The only blocking work is duration probing, which Process runs
// concurrently across discs (bounded by [WithProbeLimit]) while always
// consuming results in disc order.
package cuemerge
