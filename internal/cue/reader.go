package cue

import (
	"bytes"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ReadFile reads a CUE sheet and returns its text as UTF-8.
//
// Rippers emit CUE sheets in whatever encoding the OS handed them:
// UTF-8 with or without a BOM, UTF-16, or a legacy single-byte codepage.
// Valid UTF-8 passes through untouched; UTF-16 is detected by BOM; anything
// else is decoded as Windows-1252, which never fails and covers the common
// Latin rips.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(data)
}

// Decode converts raw CUE sheet bytes to a UTF-8 string.
func Decode(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(bytes.TrimPrefix(data, bomUTF8)), nil
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case utf8.Valid(data):
		return string(data), nil
	default:
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
