package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"flint/internal/diag"
	"flint/internal/source"
)

// Pretty writes the human-readable rendering of err to w.
func Pretty(w io.Writer, err diag.Error, file *source.File, opts PrettyOpts) error {
	_, werr := io.WriteString(w, Render(err, file, opts))
	return werr
}

// Render formats err. Syntax errors get a source excerpt:
//
//	Syntax Error: <message>
//	  --> <file>:<line>:<col>
//	  |
//	1 | <source line>
//	  | <markers>
//
// Code errors show the provenance of the failed check instead, and command
// line errors show only the message. A syntax error whose span does not fit
// file is rendered as a Code error.
func Render(err diag.Error, file *source.File, opts PrettyOpts) string {
	p := newPainter(opts.Color)
	var sb strings.Builder
	switch e := err.(type) {
	case *diag.SyntaxError:
		if rerr := renderSyntax(&sb, p, e, file, opts); rerr != nil {
			sb.Reset()
			renderCode(&sb, p, diag.WrapInternal(rerr, fmt.Sprintf("cannot render %q", e.Msg)))
		}
	case *diag.CodeError:
		renderCode(&sb, p, e)
	case *diag.CmdlineError:
		header(&sb, p, e)
	case nil:
	default:
		header(&sb, p, e)
	}
	return sb.String()
}

func header(sb *strings.Builder, p painter, e diag.Error) {
	fmt.Fprintf(sb, "%s: %s\n", p.tag.Sprint(e.Tag()), p.msg.Sprint(e.Message()))
}

func renderCode(sb *strings.Builder, p painter, e *diag.CodeError) {
	header(sb, p, e)
	fmt.Fprintf(sb, "  %s %s\n", p.frame.Sprint("-->"), e.Origin)
}

func renderSyntax(sb *strings.Builder, p painter, e *diag.SyntaxError, file *source.File, opts PrettyOpts) error {
	if file == nil {
		return fmt.Errorf("no source file for span %s", e.Span)
	}
	sp := e.Span
	if sp.End < sp.Start {
		return fmt.Errorf("inverted span %s", sp)
	}
	first, err := file.Lines.Lookup(sp.Start)
	if err != nil {
		return err
	}
	// the last touched byte decides the last line; a '\n' belongs to the
	// line it ends
	lastOff := sp.Start
	if sp.End > sp.Start {
		lastOff = sp.End - 1
	}
	last, err := file.Lines.Lookup(lastOff)
	if err != nil {
		return err
	}

	header(sb, p, e)
	fmt.Fprintf(sb, "  %s %s:%d:%d\n", p.frame.Sprint("-->"),
		file.FormatPath(opts.PathMode.String(), opts.BaseDir), first.Line, first.Col)

	gw := digits(last.Line)
	gutter := p.frame.Sprint(fmt.Sprintf("%*s |", gw, ""))
	sb.WriteString(gutter)
	sb.WriteByte('\n')

	tab := opts.tabWidth()
	for line := first.Line; line <= last.Line; line++ {
		ls, le, err := file.Lines.LineBounds(line)
		if err != nil {
			return err
		}
		from, to := ls, le
		if line == first.Line {
			from = sp.Start
		}
		if line == last.Line {
			to = sp.End
		}

		text, _ := expandTabs(string(file.Content[ls:le]), 0, tab)
		_, indent := expandTabs(string(file.Content[ls:min(from, le)]), 0, tab)
		width := markerWidth(file.Content, from, to, le, indent, tab)

		fmt.Fprintf(sb, "%s %s\n", p.frame.Sprint(fmt.Sprintf("%*d |", gw, line)), text)
		fmt.Fprintf(sb, "%s %s%s\n", gutter, strings.Repeat(" ", indent),
			p.marker.Sprint(strings.Repeat("^", width)))
	}
	return nil
}

// markerWidth is the display width of [from, to) on a line ending at le,
// starting at display column col. Bytes past the line end (its '\n' or
// the end of the buffer) count one column each. The result is at least 1.
func markerWidth(content []byte, from, to, le uint32, col, tab int) int {
	w := 0
	if from < le {
		_, end := expandTabs(string(content[from:min(to, le)]), col, tab)
		w = end - col
	}
	if to > le {
		w += int(to - max(from, le))
	}
	return max(w, 1)
}
