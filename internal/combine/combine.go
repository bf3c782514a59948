package combine

import (
	"fmt"

	"github.com/simonhull/cuemerge/internal/types"
)

// Combine merges the parsed per-disc sheets into one chapter timeline.
// offsets must be parallel to sheets (one cumulative millisecond offset
// per disc, as produced by Offsets).
//
// Chapters are numbered sequentially from 1 in (disc index, track number)
// order, never re-sorted by time, because disc order is authoritative
// even when measured durations are imprecise. Each chapter starts at its
// disc's offset plus the track's INDEX 01 position. A track without a
// title becomes "Chapter N" using the global number. Adjacent chapters
// with identical start times (a zero-length final track) are both kept;
// de-duplication is a player concern, not ours.
//
// Every chapter's end is the next chapter's start; the final chapter's end
// is left unresolved for the emitters, which know the total duration.
func Combine(sheets []*types.CueSheet, offsets []int64) (*types.CombinedSheet, error) {
	if len(sheets) != len(offsets) {
		return nil, &types.CountMismatchError{Sheets: len(sheets), Offsets: len(offsets)}
	}
	if len(sheets) == 0 {
		return nil, types.ErrNoDiscs
	}

	var chapters []types.Chapter
	number := 1
	for i, sheet := range sheets {
		if err := sheet.Validate(); err != nil {
			return nil, err
		}
		for _, tr := range sheet.Tracks {
			title := tr.Title
			if title == "" {
				title = fmt.Sprintf("Chapter %d", number)
			}
			chapters = append(chapters, types.Chapter{
				Number: number,
				Title:  title,
				Start:  offsets[i] + tr.Start.Milliseconds(),
				End:    types.NoEnd,
			})
			number++
		}
	}

	for i := range chapters[:len(chapters)-1] {
		chapters[i].End = chapters[i+1].Start
	}
	return &types.CombinedSheet{Chapters: chapters}, nil
}
