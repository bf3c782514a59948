// Package discovery locates per-disc CUE sheets under a book directory
// and resolves the audio files they reference.
package discovery

import (
	"cmp"
	"io/fs"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	cdNumberRe = regexp.MustCompile(`(?i)CD\s*(\d+)`)
	trailingRe = regexp.MustCompile(`(\d+)$`)
)

// CueFiles returns all .cue files under dir, recursively, ordered by disc
// number. Rips name discs "CD1", "CD 2", or just suffix a number; paths
// without any recognizable number sort first, keeping their walk order.
func CueFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".cue") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(files, func(a, b string) int {
		return cmp.Compare(DiscNumber(a), DiscNumber(b))
	})
	return files, nil
}

// DiscNumber extracts the disc ordering key from a path: the number after
// "CD" anywhere in the path, else trailing digits in the file stem, else 0.
func DiscNumber(path string) int {
	if m := cdNumberRe.FindStringSubmatch(path); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if m := trailingRe.FindStringSubmatch(stem); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// AudioPath resolves a sheet's FILE reference relative to the sheet's own
// location, the way players interpret it.
func AudioPath(cuePath, fileRef string) string {
	if filepath.IsAbs(fileRef) {
		return fileRef
	}
	return filepath.Join(filepath.Dir(cuePath), fileRef)
}
