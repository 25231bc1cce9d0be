package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Stale compares a rendered file with the file on disk. A missing file is
// stale and diffs against nothing.
func Stale(file GeneratedFile) (diff string, stale bool, err error) {
	existing, err := os.ReadFile(file.Path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", false, fmt.Errorf("reading %s: %w", file.Path(), err)
	}

	if bytes.Equal(existing, file.Content) {
		return "", false, nil
	}

	return LineDiff(string(existing), string(file.Content)), true, nil
}

// LineDiff lists the lines removed from from ("- ") and added in to ("+ ").
// Unchanged lines are left out.
func LineDiff(from, to string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		var prefix string

		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
