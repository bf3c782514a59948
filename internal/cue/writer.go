package cue

import (
	"fmt"
	"strings"

	"github.com/simonhull/cuemerge/internal/timecode"
	"github.com/simonhull/cuemerge/internal/types"
)

// RenderCombined renders the given sheets as a single combined CUE sheet:
// tracks renumbered globally from 1, every INDEX shifted by its disc's
// offset. The FILE directive of each disc is kept, so the output documents
// which source file each run of tracks came from.
//
// The combined sheet is the pipeline's inspectable intermediate; the
// chapter emitters work from the in-memory combined form, not from this
// text.
func RenderCombined(sheets []*types.CueSheet, offsets []int64) (string, error) {
	if len(sheets) != len(offsets) {
		return "", &types.CountMismatchError{Sheets: len(sheets), Offsets: len(offsets)}
	}
	if len(sheets) == 0 {
		return "", types.ErrNoDiscs
	}

	var b strings.Builder
	number := 1
	for i, sheet := range sheets {
		if err := sheet.Validate(); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "FILE %q WAVE\n", sheet.File)
		for _, tr := range sheet.Tracks {
			fmt.Fprintf(&b, "  TRACK %02d AUDIO\n", number)
			if tr.Title != "" {
				fmt.Fprintf(&b, "    TITLE %q\n", tr.Title)
			}
			if tr.Performer != "" {
				fmt.Fprintf(&b, "    PERFORMER %q\n", tr.Performer)
			}
			if tr.Pregap != nil {
				fmt.Fprintf(&b, "    INDEX 00 %s\n", shift(*tr.Pregap, offsets[i]))
			}
			fmt.Fprintf(&b, "    INDEX 01 %s\n", shift(tr.Start, offsets[i]))
			number++
		}
	}
	return b.String(), nil
}

func shift(tc timecode.Timecode, offsetMS int64) timecode.Timecode {
	return timecode.FromMilliseconds(offsetMS + tc.Milliseconds())
}
