package cuemerge

import (
	"github.com/simonhull/cuemerge/internal/combine"
	"github.com/simonhull/cuemerge/internal/types"
)

// Chapter is an alias to types.Chapter, one entry in a combined timeline.
type Chapter = types.Chapter

// CombinedSheet is an alias to types.CombinedSheet, the merged chapter
// sequence spanning all discs.
type CombinedSheet = types.CombinedSheet

// NoEnd marks a chapter whose end time is not yet known.
const NoEnd = types.NoEnd

// ComputeOffsets converts ordered per-disc durations in seconds to each
// disc's cumulative start offset in milliseconds. Each duration is
// rounded to the nearest millisecond before accumulation; offsets[0] is
// always 0. An empty input returns ErrNoDiscs.
func ComputeOffsets(durationsSeconds []float64) ([]int64, error) {
	return combine.Offsets(durationsSeconds)
}

// Combine merges parsed sheets and their parallel disc offsets into one
// globally renumbered chapter timeline. See the package documentation for
// the numbering, ordering, and title-fallback rules.
func Combine(sheets []*CueSheet, offsets []int64) (*CombinedSheet, error) {
	return combine.Combine(sheets, offsets)
}
