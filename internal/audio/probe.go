// Package audio wraps the external tools the pipeline delegates media
// work to: ffprobe for durations, sox and ffmpeg for lossless
// concatenation, and ffmpeg or MP4Box for muxing chapters into an M4B.
//
// Every type here is a narrow implementation of one collaborator
// interface from the root package, so the core pipeline can be tested
// hermetically with fakes. Command argument vectors are built by pure
// functions to keep them testable without spawning processes.
package audio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/simonhull/cuemerge/internal/types"
)

// FFprobe measures audio durations by running ffprobe and reading the
// format duration from its JSON output. The zero value uses "ffprobe"
// from PATH.
type FFprobe struct {
	Path string
}

func (p FFprobe) bin() string {
	if p.Path != "" {
		return p.Path
	}
	return "ffprobe"
}

// Measure returns the file's duration in seconds.
func (p FFprobe) Measure(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, p.bin(), probeArgs(path)...)
	out, err := cmd.Output()
	if err != nil {
		return 0, &types.DurationError{Path: path, Err: err}
	}
	return parseProbeOutput(path, out)
}

func probeArgs(path string) []string {
	return []string{"-v", "quiet", "-print_format", "json", "-show_format", path}
}

func parseProbeOutput(path string, out []byte) (float64, error) {
	var payload struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		return 0, &types.DurationError{Path: path, Err: fmt.Errorf("decode ffprobe output: %w", err)}
	}
	if payload.Format.Duration == "" {
		return 0, &types.DurationError{Path: path, Err: errors.New("ffprobe reported no duration")}
	}
	seconds, err := strconv.ParseFloat(payload.Format.Duration, 64)
	if err != nil {
		return 0, &types.DurationError{Path: path, Err: fmt.Errorf("bad duration %q: %w", payload.Format.Duration, err)}
	}
	if seconds < 0 {
		return 0, &types.DurationError{Path: path, Err: fmt.Errorf("negative duration %v", seconds)}
	}
	return seconds, nil
}

// run executes a prepared command, folding stderr into the returned error
// so tool failures surface with their diagnostics.
func run(cmd *exec.Cmd) error {
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %w: %s", cmd.Path, err, out)
		}
		return fmt.Errorf("%s: %w", cmd.Path, err)
	}
	return nil
}
