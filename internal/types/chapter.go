package types

// Chapter is one entry in a combined chapter timeline.
//
// Start and End are absolute positions in the merged audio, in integer
// milliseconds. End is NoEnd when unknown; the emitters resolve it from
// the next chapter's start or from the total duration.
type Chapter struct {
	Number int
	Title  string
	Start  int64
	End    int64
}

// NoEnd marks a chapter whose end time is not yet known.
const NoEnd int64 = -1

// HasEnd reports whether the chapter carries a resolved end time.
func (c Chapter) HasEnd() bool { return c.End >= 0 }

// CombinedSheet is the globally renumbered, globally time-shifted chapter
// sequence produced by combining per-disc sheets.
//
// Invariants: chapter numbers are exactly 1..len(Chapters), start times are
// non-decreasing, and ordering follows (disc index, disc-local track
// number); chapters are never re-sorted by time, because disc order is
// authoritative even when measured durations are imprecise.
type CombinedSheet struct {
	Chapters []Chapter
}

// Metadata is container-level tagging applied when muxing the audiobook.
type Metadata struct {
	Title    string
	Artist   string
	CoverArt string // path to an image file, "" for none
}

// ChapterFormat identifies which rendered chapter file a muxer consumes.
type ChapterFormat int

const (
	// ChaptersFFMetadata is the millisecond-timebase FFmetadata format.
	ChaptersFFMetadata ChapterFormat = iota
	// ChaptersClock is the clock-time chapter list format.
	ChaptersClock
)
