// Package timecode converts between CUE sheet timecodes (MM:SS:FF at the
// CD audio rate of 75 frames per second), integer milliseconds, and
// clock-time strings.
//
// All arithmetic is done in integers so that the same timecode always maps
// to the same millisecond value. Frame-to-millisecond conversion rounds
// half-up; millisecond-to-frame conversion rounds to the nearest frame, so
// any canonical timecode survives a round trip through milliseconds intact.
package timecode

import (
	"fmt"
	"regexp"
	"strconv"
)

// FramesPerSecond is the CD audio timing unit: one frame is 1/75 second.
const FramesPerSecond = 75

// Timecode is a CUE sheet time position.
//
// A canonical Timecode has Seconds in [0,59] and Frames in [0,74];
// Minutes is unbounded. Parse and FromMilliseconds always return
// canonical values.
type Timecode struct {
	Minutes int
	Seconds int
	Frames  int
}

// Error reports timecode text that could not be parsed.
type Error struct {
	Text   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid timecode %q: %s", e.Text, e.Reason)
}

var pattern = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})$`)

// Parse parses an MM:SS:FF timecode.
//
// Minutes may have any number of digits (combined sheets routinely exceed
// 99 minutes); seconds and frames must be exactly two digits. Out-of-range
// seconds or frames are not an error: overflow frames roll into seconds
// and overflow seconds roll into minutes, matching how permissive CUE
// writers behave.
func Parse(text string) (Timecode, error) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return Timecode{}, &Error{Text: text, Reason: "must be MM:SS:FF"}
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		// Only reachable when the minutes field overflows int.
		return Timecode{}, &Error{Text: text, Reason: "minutes out of range"}
	}
	seconds, _ := strconv.Atoi(m[2])
	frames, _ := strconv.Atoi(m[3])
	return normalize(minutes, seconds, frames), nil
}

// normalize rolls overflow frames into seconds and overflow seconds into
// minutes, yielding the canonical form.
func normalize(minutes, seconds, frames int) Timecode {
	seconds += frames / FramesPerSecond
	frames %= FramesPerSecond
	minutes += seconds / 60
	seconds %= 60
	return Timecode{Minutes: minutes, Seconds: seconds, Frames: frames}
}

// Milliseconds converts the timecode to integer milliseconds, rounding
// half-up. At 75 frames per second a frame is 13⅓ ms, so the fractional
// part is never exactly one half.
func (t Timecode) Milliseconds() int64 {
	total := int64(t.Minutes*60+t.Seconds)*FramesPerSecond + int64(t.Frames)
	return (total*1000 + FramesPerSecond/2) / FramesPerSecond
}

// String formats the timecode as MM:SS:FF with two-digit zero padding.
// Minutes wider than two digits are printed in full.
func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Minutes, t.Seconds, t.Frames)
}

// FromMilliseconds converts integer milliseconds to the nearest canonical
// timecode. Negative inputs clamp to zero.
func FromMilliseconds(ms int64) Timecode {
	if ms < 0 {
		ms = 0
	}
	frames := (ms*FramesPerSecond + 500) / 1000
	minutes := frames / (FramesPerSecond * 60)
	rem := frames % (FramesPerSecond * 60)
	return Timecode{
		Minutes: int(minutes),
		Seconds: int(rem / FramesPerSecond),
		Frames:  int(rem % FramesPerSecond),
	}
}

// ClockString formats integer milliseconds as HH:MM:SS.mmm, the clock-time
// form used by MP4Box chapter files. Hours, minutes, and seconds are
// zero-padded to two digits and milliseconds to three.
func ClockString(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3600000
	ms %= 3600000
	minutes := ms / 60000
	ms %= 60000
	seconds := ms / 1000
	ms %= 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, ms)
}
