package cuemerge

import (
	"github.com/simonhull/cuemerge/internal/chapters"
	"github.com/simonhull/cuemerge/internal/cue"
)

// RenderFFMetadata renders the combined sheet in FFmpeg metadata format
// (1/1000 timebase, one [CHAPTER] block per chapter). totalMS supplies
// the final chapter's END; see internal rules for the fallback when it is
// unusable. Returns ErrEmptyChapters for a sheet with no chapters.
func RenderFFMetadata(cs *CombinedSheet, totalMS int64) (string, error) {
	return chapters.FFMetadata(cs, totalMS)
}

// RenderClockList renders the combined sheet as a clock-time chapter
// list, one "HH:MM:SS.mmm Title" line per chapter (the MP4Box -chap
// format). Returns ErrEmptyChapters for a sheet with no chapters.
func RenderClockList(cs *CombinedSheet) (string, error) {
	return chapters.ClockList(cs)
}

// RenderCombinedCue renders the sheets as a single combined CUE sheet
// with globally renumbered tracks and offset-shifted INDEX lines, the
// pipeline's inspectable intermediate artifact.
func RenderCombinedCue(sheets []*CueSheet, offsets []int64) (string, error) {
	return cue.RenderCombined(sheets, offsets)
}
