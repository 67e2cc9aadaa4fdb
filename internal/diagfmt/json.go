package diagfmt

import (
	"encoding/json"
	"io"

	"flint/internal/diag"
	"flint/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// OriginJSON is the provenance of a code error.
type OriginJSON struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Func string `json:"func"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Kind     string        `json:"kind"`
	Code     string        `json:"code,omitempty"`
	Message  string        `json:"message"`
	Snippet  string        `json:"snippet,omitempty"`
	Location *LocationJSON `json:"location,omitempty"`
	Origin   *OriginJSON   `json:"origin,omitempty"`
}

func makeLocation(file *source.File, span source.Span, opts JSONOpts) LocationJSON {
	loc := LocationJSON{
		File:      file.FormatPath(opts.PathMode.String(), opts.BaseDir),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if !opts.IncludePositions {
		return loc
	}
	if start, err := file.Lines.Lookup(span.Start); err == nil {
		loc.StartLine, loc.StartCol = start.Line, start.Col
	}
	if end, err := file.Lines.Lookup(span.End); err == nil {
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildDiagnosticJSON converts err into its JSON shape. file may be nil for
// errors without a span.
func BuildDiagnosticJSON(err diag.Error, file *source.File, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{Kind: err.Tag().String(), Message: err.Message()}
	switch e := err.(type) {
	case *diag.SyntaxError:
		out.Code = e.Code.ID()
		out.Snippet = e.Snippet
		if file != nil {
			loc := makeLocation(file, e.Span, opts)
			out.Location = &loc
		}
	case *diag.CodeError:
		out.Origin = &OriginJSON{File: e.Origin.File, Line: e.Origin.Line, Func: e.Origin.Func}
	}
	return out
}

// FormatJSON writes err as one indented JSON object.
func FormatJSON(w io.Writer, err diag.Error, file *source.File, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticJSON(err, file, opts))
}
