// Package types defines the shared data model for CUE sheet merging:
// parsed sheets and tracks, combined chapter sequences, and the error
// taxonomy used across the library.
package types

import (
	"fmt"

	"github.com/simonhull/cuemerge/internal/timecode"
)

// CueSheet is one disc's parsed CUE metadata.
//
// CueSheet values are created by the parser and are not mutated afterward.
// Performer and Title are disc-level; the empty string means the directive
// was absent.
type CueSheet struct {
	// Path is the source file the sheet was parsed from, "" for in-memory text.
	Path string

	// Performer and Title from the disc-level PERFORMER/TITLE directives.
	Performer string
	Title     string

	// File is the audio file named by the FILE directive.
	File string

	// Tracks in sheet order. Track numbers are unique and strictly increasing.
	Tracks []Track

	// Rem holds REM comments as upper-cased key -> value. CUE writers stash
	// arbitrary metadata here (GENRE, DATE, DURATION); keeping them lets
	// callers use declared values the recognized directives don't carry.
	Rem map[string]string
}

// Track is a single TRACK entry within a sheet.
type Track struct {
	// Number is the disc-local track number, 1-based.
	Number int

	// Title and Performer are track-level overrides; "" means unset, which
	// lets the chapter emitters apply their own default naming.
	Title     string
	Performer string

	// Start is the INDEX 01 position, mandatory for every track.
	Start timecode.Timecode

	// Pregap is the INDEX 00 position, nil when the track has none.
	Pregap *timecode.Timecode
}

// Validate checks the sheet invariants: a FILE reference, at least one
// track, and strictly increasing track numbers. The parser establishes
// these at construction; Validate guards sheets assembled by hand.
func (s *CueSheet) Validate() error {
	if s.File == "" {
		return fmt.Errorf("cue sheet %s: missing FILE reference", s.name())
	}
	if len(s.Tracks) == 0 {
		return fmt.Errorf("cue sheet %s: no tracks", s.name())
	}
	last := 0
	for _, tr := range s.Tracks {
		if tr.Number <= last {
			return fmt.Errorf("cue sheet %s: track %d out of order after %d", s.name(), tr.Number, last)
		}
		last = tr.Number
	}
	return nil
}

func (s *CueSheet) name() string {
	if s.Path != "" {
		return s.Path
	}
	return "(in memory)"
}
