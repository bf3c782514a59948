package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Sox concatenates audio files losslessly with sox. This is the preferred
// merger for FLAC input: sample-exact, no re-encode. The zero value uses
// "sox" from PATH.
type Sox struct {
	Path string
}

// Merge writes the concatenation of inputs to output.
func (s Sox) Merge(ctx context.Context, inputs []string, output string) error {
	bin := s.Path
	if bin == "" {
		bin = "sox"
	}
	args := append(append([]string{}, inputs...), output)
	return run(exec.CommandContext(ctx, bin, args...))
}

// FFmpegConcat concatenates audio files with ffmpeg's concat demuxer,
// stream-copying the audio. Used for inputs sox cannot read (MP3 rips).
// The zero value uses "ffmpeg" from PATH.
type FFmpegConcat struct {
	Path string
}

// Merge writes the concatenation of inputs to output. A concat list file
// is written next to the output and removed afterward.
func (f FFmpegConcat) Merge(ctx context.Context, inputs []string, output string) error {
	bin := f.Path
	if bin == "" {
		bin = "ffmpeg"
	}

	list := output + ".concat.txt"
	if err := os.WriteFile(list, []byte(concatList(inputs)), 0o644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	defer os.Remove(list)

	args := []string{"-f", "concat", "-safe", "0", "-i", list, "-c", "copy", "-y", output}
	return run(exec.CommandContext(ctx, bin, args...))
}

// concatList renders the ffmpeg concat demuxer input list. Paths are made
// absolute so the list's own location doesn't matter, and single quotes
// get the demuxer's quote-break escape.
func concatList(inputs []string) string {
	var b strings.Builder
	for _, in := range inputs {
		if abs, err := filepath.Abs(in); err == nil {
			in = abs
		}
		fmt.Fprintf(&b, "file '%s'\n", strings.ReplaceAll(in, `'`, `'\''`))
	}
	return b.String()
}
