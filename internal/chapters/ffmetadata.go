// Package chapters renders a combined chapter sequence into the two
// chapter-marker text formats downstream muxers consume: the
// millisecond-timebase FFmetadata block format and the clock-time list
// format. Neither renderer performs I/O; both return the rendered text.
package chapters

import (
	"fmt"
	"strings"

	"github.com/simonhull/cuemerge/internal/types"
)

// lastChapterBufferMS pads the final chapter's end when no usable total
// duration is available. Ten seconds, matching what chapter-aware players
// tolerate for a trailing marker.
const lastChapterBufferMS = 10000

var (
	newlineStripper = strings.NewReplacer("\r", "", "\n", "")

	// FFmetadata values must escape '=', ';', '#' and '\' with a backslash.
	metaEscaper = strings.NewReplacer(
		`\`, `\\`,
		"=", `\=`,
		";", `\;`,
		"#", `\#`,
	)
)

// FFMetadata renders the combined sheet in FFmpeg metadata format with a
// 1/1000 timebase: the ;FFMETADATA1 header, then one [CHAPTER] block per
// chapter with START, END, and title.
//
// Each chapter's END is the next chapter's START; the final chapter ends
// at totalMS. When totalMS is not usable (zero, or not past the final
// start), the final chapter gets a ten-second buffer instead, since the
// block format requires an END.
//
// Titles are written as UTF-8 with newlines stripped (a raw newline would
// terminate the field and corrupt the block) and FFmetadata specials
// backslash-escaped.
func FFMetadata(cs *types.CombinedSheet, totalMS int64) (string, error) {
	if cs == nil || len(cs.Chapters) == 0 {
		return "", types.ErrEmptyChapters
	}

	var b strings.Builder
	b.WriteString(";FFMETADATA1\n")
	for i, ch := range cs.Chapters {
		end := ch.End
		if !ch.HasEnd() {
			switch {
			case i < len(cs.Chapters)-1:
				end = cs.Chapters[i+1].Start
			case totalMS > ch.Start:
				end = totalMS
			default:
				end = ch.Start + lastChapterBufferMS
			}
		}
		fmt.Fprintf(&b, "[CHAPTER]\nTIMEBASE=1/1000\nSTART=%d\nEND=%d\ntitle=%s\n\n",
			ch.Start, end, escapeTitle(ch.Title))
	}
	return b.String(), nil
}

func escapeTitle(title string) string {
	return metaEscaper.Replace(newlineStripper.Replace(title))
}
