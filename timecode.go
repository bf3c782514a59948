package cuemerge

import (
	"github.com/simonhull/cuemerge/internal/timecode"
)

// Timecode is an alias to timecode.Timecode, a CUE MM:SS:FF position at
// 75 frames per second.
type Timecode = timecode.Timecode

// ParseTimecode is a wrapper around timecode.Parse.
func ParseTimecode(text string) (Timecode, error) {
	return timecode.Parse(text)
}

// TimecodeFromMilliseconds is a wrapper around timecode.FromMilliseconds.
func TimecodeFromMilliseconds(ms int64) Timecode {
	return timecode.FromMilliseconds(ms)
}

// ClockString formats integer milliseconds as HH:MM:SS.mmm.
func ClockString(ms int64) string {
	return timecode.ClockString(ms)
}
