package cosy

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/yesagainivan/cosy/encode"
	"github.com/yesagainivan/cosy/ir"
)

// Diff renders a line diff between the canonical encodings of a and
// b: removed lines prefixed "- ", added lines "+ ", common lines
// "  ". Equal values yield the empty string.
func Diff(a, b *ir.Node) string {
	if ir.Equal(a, b) {
		return ""
	}
	at := encode.MustString(a) + "\n"
	bt := encode.MustString(b) + "\n"

	dmp := diffmatchpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(at, bt)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
