package types

import (
	"errors"
	"fmt"
)

// SyntaxError is returned when a CUE sheet is malformed: a missing FILE
// directive, tracks out of numeric order, a track without INDEX 01, or an
// unparseable timecode. Line is 1-based; 0 means the error concerns the
// sheet as a whole.
type SyntaxError struct {
	Path   string
	Line   int
	Reason string
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	default:
		return e.Reason
	}
}

// DurationError is returned when no duration could be measured for an
// audio file. It wraps the probe's underlying failure.
type DurationError struct {
	Path string
	Err  error
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("%s: duration unavailable: %v", e.Path, e.Err)
}

func (e *DurationError) Unwrap() error { return e.Err }

// CountMismatchError is returned when Combine is given a different number
// of sheets and offsets. This is a programmer error, never recovered.
type CountMismatchError struct {
	Sheets  int
	Offsets int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("combine: %d sheets but %d offsets", e.Sheets, e.Offsets)
}

// ErrNoDiscs is returned when an operation is given zero discs.
var ErrNoDiscs = errors.New("no discs")

// ErrEmptyChapters is returned by the renderers for a combined sheet with
// zero chapters.
var ErrEmptyChapters = errors.New("combined sheet has no chapters")
