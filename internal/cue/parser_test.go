package cue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/cuemerge/internal/timecode"
	"github.com/simonhull/cuemerge/internal/types"
)

const sampleSheet = `PERFORMER "Author Name"
TITLE "Book Title"
REM GENRE "Audiobook"
REM DATE 2005
FILE "disc1.flac" WAVE
  TRACK 01 AUDIO
    TITLE "Chapter One"
    INDEX 01 00:00:00
  TRACK 02 AUDIO
    TITLE "Chapter Two"
    PERFORMER "A Narrator"
    INDEX 00 05:12:30
    INDEX 01 05:12:55
`

func TestParse(t *testing.T) {
	sheet, err := Parse(sampleSheet, "disc1.cue")
	require.NoError(t, err)

	assert.Equal(t, "disc1.cue", sheet.Path)
	assert.Equal(t, "Author Name", sheet.Performer)
	assert.Equal(t, "Book Title", sheet.Title)
	assert.Equal(t, "disc1.flac", sheet.File)
	assert.Equal(t, map[string]string{"GENRE": "Audiobook", "DATE": "2005"}, sheet.Rem)

	require.Len(t, sheet.Tracks, 2)

	first := sheet.Tracks[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "Chapter One", first.Title)
	assert.Empty(t, first.Performer)
	assert.Equal(t, timecode.Timecode{}, first.Start)
	assert.Nil(t, first.Pregap)

	second := sheet.Tracks[1]
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, "Chapter Two", second.Title)
	assert.Equal(t, "A Narrator", second.Performer)
	assert.Equal(t, timecode.Timecode{Minutes: 5, Seconds: 12, Frames: 55}, second.Start)
	require.NotNil(t, second.Pregap)
	assert.Equal(t, timecode.Timecode{Minutes: 5, Seconds: 12, Frames: 30}, *second.Pregap)

	require.NoError(t, sheet.Validate())
}

func TestParse_UntitledTracksStayUnset(t *testing.T) {
	sheet, err := Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
INDEX 01 00:00:00
`, "")
	require.NoError(t, err)
	assert.Empty(t, sheet.Tracks[0].Title, "absent TITLE must stay unset so emitters can apply defaults")
}

func TestParse_UnknownDirectivesIgnored(t *testing.T) {
	sheet, err := Parse(`CATALOG 1234567890123
FILE "a.flac" WAVE
  TRACK 01 AUDIO
    FLAGS DCP
    ISRC USRC17607839
    INDEX 01 00:00:00
SONGWRITER "someone"
`, "")
	require.NoError(t, err)
	require.Len(t, sheet.Tracks, 1)
}

func TestParse_CaseInsensitiveDirectives(t *testing.T) {
	sheet, err := Parse(`file "a.flac" wave
track 01 audio
index 01 00:02:00
`, "")
	require.NoError(t, err)
	require.Len(t, sheet.Tracks, 1)
	assert.Equal(t, timecode.Timecode{Seconds: 2}, sheet.Tracks[0].Start)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLine int
		wantMsg  string
	}{
		{
			name: "missing FILE",
			text: `TRACK 01 AUDIO
INDEX 01 00:00:00
`,
			wantLine: 0,
			wantMsg:  "missing FILE directive",
		},
		{
			name:     "no tracks",
			text:     `FILE "a.flac" WAVE` + "\n",
			wantLine: 0,
			wantMsg:  "no tracks",
		},
		{
			name: "tracks out of order",
			text: `FILE "a.flac" WAVE
TRACK 02 AUDIO
INDEX 01 00:00:00
TRACK 01 AUDIO
INDEX 01 00:10:00
`,
			wantLine: 4,
			wantMsg:  "track 1 out of order after 2",
		},
		{
			name: "duplicate track number",
			text: `FILE "a.flac" WAVE
TRACK 01 AUDIO
INDEX 01 00:00:00
TRACK 01 AUDIO
INDEX 01 00:10:00
`,
			wantLine: 4,
			wantMsg:  "track 1 out of order after 1",
		},
		{
			name: "missing INDEX 01",
			text: `FILE "a.flac" WAVE
TRACK 01 AUDIO
TITLE "no start"
TRACK 02 AUDIO
INDEX 01 00:10:00
`,
			wantLine: 2,
			wantMsg:  "track 1 missing INDEX 01",
		},
		{
			name: "missing INDEX 01 on final track",
			text: `FILE "a.flac" WAVE
TRACK 01 AUDIO
INDEX 01 00:00:00
TRACK 02 AUDIO
INDEX 00 00:10:00
`,
			wantLine: 4,
			wantMsg:  "track 2 missing INDEX 01",
		},
		{
			name: "malformed timecode",
			text: `FILE "a.flac" WAVE
TRACK 01 AUDIO
INDEX 01 0:0:0
`,
			wantLine: 3,
			wantMsg:  "invalid timecode",
		},
		{
			name: "index outside track",
			text: `FILE "a.flac" WAVE
INDEX 01 00:00:00
`,
			wantLine: 2,
			wantMsg:  "INDEX outside of a TRACK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, "bad.cue")
			require.Error(t, err)

			var syntaxErr *types.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, "bad.cue", syntaxErr.Path)
			assert.Equal(t, tt.wantLine, syntaxErr.Line)
			assert.Contains(t, syntaxErr.Reason, tt.wantMsg)
		})
	}
}

func TestParse_OverflowTimecodeNormalized(t *testing.T) {
	sheet, err := Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
INDEX 01 00:00:80
`, "")
	require.NoError(t, err)
	assert.Equal(t, timecode.Timecode{Seconds: 1, Frames: 5}, sheet.Tracks[0].Start)
}

func TestParse_FirstFileDirectiveWins(t *testing.T) {
	sheet, err := Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
INDEX 01 00:00:00
FILE "b.flac" WAVE
`, "")
	require.NoError(t, err)
	assert.Equal(t, "a.flac", sheet.File)
}
