package audio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/cuemerge/internal/types"
)

func TestProbeArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"-v", "quiet", "-print_format", "json", "-show_format", "cd1.flac"},
		probeArgs("cd1.flac"))
}

func TestParseProbeOutput(t *testing.T) {
	secs, err := parseProbeOutput("cd1.flac", []byte(`{"format":{"duration":"7205.200000","format_name":"flac"}}`))
	require.NoError(t, err)
	assert.Equal(t, 7205.2, secs)
}

func TestParseProbeOutput_Errors(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"not json", "Duration: 01:00:00"},
		{"no format section", `{}`},
		{"empty duration", `{"format":{}}`},
		{"unparseable duration", `{"format":{"duration":"N/A"}}`},
		{"negative duration", `{"format":{"duration":"-3"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseProbeOutput("cd1.flac", []byte(tt.out))
			var durationErr *types.DurationError
			require.ErrorAs(t, err, &durationErr)
			assert.Equal(t, "cd1.flac", durationErr.Path)
		})
	}
}

func TestConcatList(t *testing.T) {
	list := concatList([]string{"/audio/cd1.flac", "/audio/cd2.flac"})

	lines := strings.Split(strings.TrimSuffix(list, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "file '/audio/cd1.flac'", lines[0])
	assert.Equal(t, "file '/audio/cd2.flac'", lines[1])
}

func TestConcatList_EscapesQuotes(t *testing.T) {
	list := concatList([]string{`/audio/it's a book.mp3`})
	assert.Equal(t, `file '/audio/it'\''s a book.mp3'`+"\n", list)
}

func TestFFmpegMuxArgs(t *testing.T) {
	args := ffmpegMuxArgs("combined.aac", "chapters.ffmetadata", "book.m4b", types.Metadata{})

	assert.Equal(t, []string{
		"-i", "combined.aac",
		"-i", "chapters.ffmetadata", "-map_metadata", "1",
		"-c:a", "copy",
		"-movflags", "+faststart", "-f", "mp4", "-y", "book.m4b",
	}, args)
}

func TestFFmpegMuxArgs_WithMetadataAndCover(t *testing.T) {
	meta := types.Metadata{Title: "A New Earth", Artist: "Eckhart Tolle", CoverArt: "cover.jpg"}
	args := ffmpegMuxArgs("combined.aac", "chapters.ffmetadata", "book.m4b", meta)

	assert.Equal(t, []string{
		"-i", "combined.aac",
		"-i", "cover.jpg", "-map", "0:a", "-map", "1:v",
		"-i", "chapters.ffmetadata", "-map_metadata", "2",
		"-metadata", "title=A New Earth",
		"-metadata", "artist=Eckhart Tolle",
		"-c:a", "copy", "-c:v", "copy",
		"-movflags", "+faststart", "-f", "mp4", "-y", "book.m4b",
	}, args)
}

func TestChapterFormats(t *testing.T) {
	assert.Equal(t, types.ChaptersFFMetadata, FFmpegMux{}.ChapterFormat())
	assert.Equal(t, types.ChaptersClock, MP4Box{}.ChapterFormat())
}
