package audio

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/simonhull/cuemerge/internal/types"
)

// FFmpegMux embeds an FFmetadata chapter file (and optional tags/cover
// art) into an MP4 container with ffmpeg, stream-copying the audio. The
// zero value uses "ffmpeg" from PATH.
type FFmpegMux struct {
	Path string
}

// Mux writes output from audioFile plus the chapters in chaptersFile.
func (f FFmpegMux) Mux(ctx context.Context, audioFile, chaptersFile, output string, meta types.Metadata) error {
	bin := f.Path
	if bin == "" {
		bin = "ffmpeg"
	}
	return run(exec.CommandContext(ctx, bin, ffmpegMuxArgs(audioFile, chaptersFile, output, meta)...))
}

// ChapterFormat reports that ffmpeg consumes the FFmetadata rendering.
func (FFmpegMux) ChapterFormat() types.ChapterFormat { return types.ChaptersFFMetadata }

// ffmpegMuxArgs builds the ffmpeg invocation. Input indices shift when a
// cover image is present, so the chapter file's -map_metadata index is
// computed, not hardcoded.
func ffmpegMuxArgs(audioFile, chaptersFile, output string, meta types.Metadata) []string {
	args := []string{"-i", audioFile}
	inputs := 1

	if meta.CoverArt != "" {
		args = append(args, "-i", meta.CoverArt, "-map", "0:a", "-map", fmt.Sprintf("%d:v", inputs))
		inputs++
	}

	args = append(args, "-i", chaptersFile, "-map_metadata", fmt.Sprintf("%d", inputs))
	inputs++

	if meta.Title != "" {
		args = append(args, "-metadata", "title="+meta.Title)
	}
	if meta.Artist != "" {
		args = append(args, "-metadata", "artist="+meta.Artist)
	}

	args = append(args, "-c:a", "copy")
	if meta.CoverArt != "" {
		args = append(args, "-c:v", "copy")
	}
	return append(args, "-movflags", "+faststart", "-f", "mp4", "-y", output)
}

// MP4Box embeds a clock-time chapter list into an M4B with MP4Box. It
// performs no tagging; meta is ignored. The zero value uses "MP4Box"
// from PATH.
type MP4Box struct {
	Path string
}

// Mux writes output from audioFile plus the chapters in chaptersFile.
func (m MP4Box) Mux(ctx context.Context, audioFile, chaptersFile, output string, _ types.Metadata) error {
	bin := m.Path
	if bin == "" {
		bin = "MP4Box"
	}
	args := []string{"-add", audioFile, "-chap", chaptersFile, output}
	return run(exec.CommandContext(ctx, bin, args...))
}

// ChapterFormat reports that MP4Box consumes the clock-time rendering.
func (MP4Box) ChapterFormat() types.ChapterFormat { return types.ChaptersClock }
