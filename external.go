package cuemerge

import (
	"context"

	"github.com/simonhull/cuemerge/internal/audio"
	"github.com/simonhull/cuemerge/internal/types"
)

// Metadata is an alias to types.Metadata, container-level tagging applied
// when muxing.
type Metadata = types.Metadata

// ChapterFormat is an alias to types.ChapterFormat.
type ChapterFormat = types.ChapterFormat

// Chapter file formats a Muxer can declare it consumes.
const (
	ChaptersFFMetadata = types.ChaptersFFMetadata
	ChaptersClock      = types.ChaptersClock
)

// DurationSource measures the playable length of an audio file in
// seconds. Implementations shell out to a prober (see internal/audio's
// FFprobe); tests inject fakes. Measure failures are *DurationError.
type DurationSource interface {
	Measure(ctx context.Context, path string) (float64, error)
}

// Merger losslessly concatenates the ordered input files into output.
type Merger interface {
	Merge(ctx context.Context, inputs []string, output string) error
}

// Muxer embeds a rendered chapter file into an audio container.
// ChapterFormat declares which of the two renderings the tool consumes;
// the formats differ in whether chapters carry explicit end times, so the
// choice is the muxer's, not the pipeline's.
type Muxer interface {
	Mux(ctx context.Context, audioFile, chaptersFile, output string, meta Metadata) error
	ChapterFormat() ChapterFormat
}

// Shipped collaborator implementations, aliased from internal/audio.
// Each wraps one external tool; the Path field overrides the binary
// looked up on PATH.
type (
	// FFprobe measures durations with ffprobe. The default DurationSource.
	FFprobe = audio.FFprobe
	// Sox concatenates audio with sox.
	Sox = audio.Sox
	// FFmpegConcat concatenates audio with ffmpeg's concat demuxer.
	FFmpegConcat = audio.FFmpegConcat
	// FFmpegMux muxes an M4B with ffmpeg from FFmetadata chapters.
	FFmpegMux = audio.FFmpegMux
	// MP4Box muxes an M4B with MP4Box from a clock-time chapter list.
	MP4Box = audio.MP4Box
)
