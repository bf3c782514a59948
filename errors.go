package cuemerge

import (
	"github.com/simonhull/cuemerge/internal/timecode"
	"github.com/simonhull/cuemerge/internal/types"
)

// SyntaxError is an alias to types.SyntaxError: malformed CUE sheet text,
// localized to a source file and line.
type SyntaxError = types.SyntaxError

// TimecodeError is an alias to timecode.Error: timecode text that does
// not parse as MM:SS:FF.
type TimecodeError = timecode.Error

// DurationError is an alias to types.DurationError: no duration could be
// measured for an audio file.
type DurationError = types.DurationError

// CountMismatchError is an alias to types.CountMismatchError: Combine was
// given different numbers of sheets and offsets.
type CountMismatchError = types.CountMismatchError

// Sentinel errors for invariant violations.
var (
	ErrNoDiscs       = types.ErrNoDiscs
	ErrEmptyChapters = types.ErrEmptyChapters
)
