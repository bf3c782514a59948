// Package cue parses CUE sheet text into the structured model and renders
// combined sheets back to CUE syntax.
//
// Parsing is deliberately permissive about directives it does not know:
// REM comments are collected, anything else unrecognized is skipped. Only
// malformed input within the recognized directives is an error: "unknown"
// and "malformed" are different things, and rippers keep inventing
// directives.
package cue

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/simonhull/cuemerge/internal/timecode"
	"github.com/simonhull/cuemerge/internal/types"
)

var (
	fileRe      = regexp.MustCompile(`(?i)^FILE\s+"([^"]*)"\s+\S+$`)
	trackRe     = regexp.MustCompile(`(?i)^TRACK\s+(\d+)\s+AUDIO$`)
	indexRe     = regexp.MustCompile(`(?i)^INDEX\s+(\d{2})\s+(\S+)$`)
	titleRe     = regexp.MustCompile(`(?i)^TITLE\s+"([^"]*)"$`)
	performerRe = regexp.MustCompile(`(?i)^PERFORMER\s+"([^"]*)"$`)
	remRe       = regexp.MustCompile(`(?i)^REM\s+(\S+)\s+(.+)$`)
)

// Parse parses one disc's CUE sheet text. path is used only for error
// reporting and the sheet's Path field; pass "" for in-memory text.
//
// Errors are *types.SyntaxError carrying the offending line number.
func Parse(text, path string) (*types.CueSheet, error) {
	p := &parser{sheet: &types.CueSheet{Path: path}, path: path}

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		p.line++
		if err := p.directive(strings.TrimSpace(sc.Text())); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &types.SyntaxError{Path: path, Line: p.line, Reason: err.Error()}
	}

	if err := p.flushTrack(); err != nil {
		return nil, err
	}
	if p.sheet.File == "" {
		return nil, &types.SyntaxError{Path: path, Reason: "missing FILE directive"}
	}
	if len(p.sheet.Tracks) == 0 {
		return nil, &types.SyntaxError{Path: path, Reason: "no tracks"}
	}
	return p.sheet, nil
}

type parser struct {
	sheet *types.CueSheet
	path  string
	line  int

	track     *types.Track
	trackLine int // line the current TRACK was declared on
	haveStart bool
}

func (p *parser) directive(line string) error {
	if line == "" {
		return nil
	}
	switch {
	case trackRe.MatchString(line):
		return p.beginTrack(trackRe.FindStringSubmatch(line)[1])

	case indexRe.MatchString(line):
		m := indexRe.FindStringSubmatch(line)
		return p.index(m[1], m[2])

	case titleRe.MatchString(line):
		title := titleRe.FindStringSubmatch(line)[1]
		if p.track != nil {
			p.track.Title = title
		} else {
			p.sheet.Title = title
		}

	case performerRe.MatchString(line):
		performer := performerRe.FindStringSubmatch(line)[1]
		if p.track != nil {
			p.track.Performer = performer
		} else {
			p.sheet.Performer = performer
		}

	case fileRe.MatchString(line):
		// Keep the first FILE; a stray second reference does not change
		// which audio the sheet describes.
		if p.sheet.File == "" {
			p.sheet.File = fileRe.FindStringSubmatch(line)[1]
		}

	case remRe.MatchString(line):
		m := remRe.FindStringSubmatch(line)
		if p.sheet.Rem == nil {
			p.sheet.Rem = make(map[string]string)
		}
		p.sheet.Rem[strings.ToUpper(m[1])] = strings.Trim(m[2], `"`)

	default:
		// Unrecognized directive: ignored for forward compatibility.
	}
	return nil
}

func (p *parser) beginTrack(number string) error {
	if err := p.flushTrack(); err != nil {
		return err
	}
	n, err := strconv.Atoi(number)
	if err != nil {
		return p.errf("track number %q out of range", number)
	}
	if last := p.lastTrackNumber(); n <= last {
		return p.errf("track %d out of order after %d", n, last)
	}
	p.track = &types.Track{Number: n}
	p.trackLine = p.line
	p.haveStart = false
	return nil
}

func (p *parser) index(number, tc string) error {
	if p.track == nil {
		return p.errf("INDEX outside of a TRACK")
	}
	parsed, err := timecode.Parse(tc)
	if err != nil {
		return p.errf("%v", err)
	}
	switch number {
	case "00":
		p.track.Pregap = &parsed
	case "01":
		p.track.Start = parsed
		p.haveStart = true
	default:
		// Subindices beyond 01 carry no chapter information.
	}
	return nil
}

// flushTrack appends the in-progress track, enforcing that it carried an
// INDEX 01.
func (p *parser) flushTrack() error {
	if p.track == nil {
		return nil
	}
	if !p.haveStart {
		return &types.SyntaxError{
			Path:   p.path,
			Line:   p.trackLine,
			Reason: fmt.Sprintf("track %d missing INDEX 01", p.track.Number),
		}
	}
	p.sheet.Tracks = append(p.sheet.Tracks, *p.track)
	p.track = nil
	return nil
}

func (p *parser) lastTrackNumber() int {
	if len(p.sheet.Tracks) == 0 {
		return 0
	}
	return p.sheet.Tracks[len(p.sheet.Tracks)-1].Number
}

func (p *parser) errf(format string, args ...any) error {
	return &types.SyntaxError{Path: p.path, Line: p.line, Reason: fmt.Sprintf(format, args...)}
}
