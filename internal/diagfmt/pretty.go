// Package diagfmt renders diagnostics and token dumps for the CLI.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"adacase/internal/diag"
	"adacase/internal/source"
)

// Pretty formats diagnostics in human-readable form. It walks bag.Items()
// (callers are expected to bag.Sort() beforehand). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <Message>
//
// followed by the source line and a ^~~~ underline under the primary span,
// then any notes in the same shape. Color is gated by opts.Color.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	loc := formatLocation(d.Primary, fs, opts)
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s: %s [%s]: %s\n", loc, sev, d.Code.ID(), d.Message)

	printContext(w, d.Primary, fs, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "%s: note: %s\n", formatLocation(note.Span, fs, opts), note.Msg)
			printContext(w, note.Span, fs, opts)
		}
	}
}

// printContext renders the primary line with a caret underline. Multi-line
// spans underline only the first line. Widths are measured with runewidth so
// the carets stay aligned under wide runes.
func printContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if span.Empty() || opts.Context < 0 {
		return
	}
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	for n := int8(0); n < opts.Context; n++ {
		before := int64(start.Line) - int64(opts.Context-n)
		if before < 1 {
			continue
		}
		fmt.Fprintf(w, "%5d | %s\n", before, file.GetLine(uint32(before)))
	}

	line := file.GetLine(start.Line)
	fmt.Fprintf(w, "%5d | %s\n", start.Line, line)

	prefixWidth := runewidth.StringWidth(expandTabs(sliceCols(line, 1, start.Col)))
	spanWidth := 1
	if end.Line == start.Line && end.Col > start.Col {
		spanWidth = runewidth.StringWidth(sliceCols(line, start.Col, end.Col))
	}
	underline := "^" + strings.Repeat("~", max(spanWidth-1, 0))
	if opts.Color {
		underline = color.New(color.FgHiRed, color.Bold).Sprint(underline)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", prefixWidth), underline)
}

// sliceCols returns the 1-based [from, to) column range of a line,
// counting columns in bytes the way span resolution does.
func sliceCols(line string, from, to uint32) string {
	if from < 1 {
		from = 1
	}
	lo := int(from - 1)
	hi := int(to - 1)
	if lo > len(line) {
		return ""
	}
	if hi > len(line) || hi < lo {
		hi = len(line)
	}
	return line[lo:hi]
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "        ")
}

func formatLocation(span source.Span, fs *source.FileSet, opts PrettyOpts) string {
	if span.Empty() && span.Start == 0 {
		return "<input>"
	}
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", displayPath(file.Path, fs, opts.PathMode), start.Line, start.Col)
}

func displayPath(path string, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return source.BaseName(path)
	case PathModeAbsolute:
		return path
	default:
		if rel, err := source.RelativePath(path, fs.BaseDir()); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
		return path
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgHiRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgHiYellow, color.Bold)
	default:
		return color.New(color.FgHiCyan)
	}
}
