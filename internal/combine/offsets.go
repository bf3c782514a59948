// Package combine turns per-disc durations and parsed sheets into one
// globally renumbered, globally time-shifted chapter sequence.
package combine

import (
	"math"

	"github.com/simonhull/cuemerge/internal/types"
)

// Offsets computes each disc's cumulative start time in milliseconds from
// the ordered per-disc durations in seconds.
//
// Each duration is rounded to the nearest millisecond before accumulation,
// not after, so rounding error never compounds across discs. offsets[0] is
// always 0 and the result always has the same length as the input.
func Offsets(durationsSeconds []float64) ([]int64, error) {
	if len(durationsSeconds) == 0 {
		return nil, types.ErrNoDiscs
	}
	offsets := make([]int64, len(durationsSeconds))
	var total int64
	for i, d := range durationsSeconds {
		offsets[i] = total
		total += durationMS(d)
	}
	return offsets, nil
}

// Total returns the combined duration in milliseconds, summed with the
// same per-duration rounding as Offsets.
func Total(durationsSeconds []float64) int64 {
	var total int64
	for _, d := range durationsSeconds {
		total += durationMS(d)
	}
	return total
}

func durationMS(seconds float64) int64 {
	return int64(math.Round(seconds * 1000))
}
