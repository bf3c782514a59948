package cuemerge

import (
	"github.com/simonhull/cuemerge/internal/cue"
	"github.com/simonhull/cuemerge/internal/types"
)

// CueSheet is an alias to types.CueSheet, one disc's parsed CUE metadata.
type CueSheet = types.CueSheet

// Track is an alias to types.Track, a single TRACK entry within a sheet.
type Track = types.Track

// Parse parses one disc's CUE sheet text. path is used for error messages
// and the sheet's Path field; pass "" for in-memory text.
//
// Errors are *SyntaxError carrying the offending line.
func Parse(text, path string) (*CueSheet, error) {
	return cue.Parse(text, path)
}

// ParseFile reads and parses a CUE sheet from disk. The file's encoding
// is detected: UTF-8 (with or without BOM) and UTF-16 pass through, and
// anything else is decoded as Windows-1252.
func ParseFile(path string) (*CueSheet, error) {
	text, err := cue.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return cue.Parse(text, path)
}
