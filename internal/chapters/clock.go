package chapters

import (
	"fmt"
	"strings"

	"github.com/simonhull/cuemerge/internal/timecode"
	"github.com/simonhull/cuemerge/internal/types"
)

// ClockList renders the combined sheet as a clock-time chapter list, one
// line per chapter: "HH:MM:SS.mmm Title". This is the format MP4Box
// accepts with -chap.
//
// The format carries no END field; a chapter implicitly runs until the
// next one starts. Titles have newlines stripped (the format is
// line-oriented) but are otherwise written verbatim; clock lists have no
// escape syntax.
func ClockList(cs *types.CombinedSheet) (string, error) {
	if cs == nil || len(cs.Chapters) == 0 {
		return "", types.ErrEmptyChapters
	}

	var b strings.Builder
	for _, ch := range cs.Chapters {
		fmt.Fprintf(&b, "%s %s\n", timecode.ClockString(ch.Start), newlineStripper.Replace(ch.Title))
	}
	return b.String(), nil
}
