package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// writeDiff writes a line diff from want to got.
func writeDiff(w io.Writer, want, got string) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want+"\n", got+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	red, green := diagColor(color.FgRed), diagColor(color.FgGreen)
	for i := range diffs {
		diff := &diffs[i]
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			ln = strings.TrimSuffix(ln, "\n")
			switch diff.Type {
			case diffpatch.DiffDelete:
				red.Fprintf(w, "- %s\n", ln)
			case diffpatch.DiffInsert:
				green.Fprintf(w, "+ %s\n", ln)
			case diffpatch.DiffEqual:
				fmt.Fprintf(w, "  %s\n", ln)
			}
		}
	}
}
