package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// DefaultTabWidth is used when PrettyOpts.TabWidth is not positive.
const DefaultTabWidth = 4

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	TabWidth int // колонок на '\t' в выдержке
	PathMode PathMode
	BaseDir  string // для PathModeRelative
}

func (o PrettyOpts) tabWidth() int {
	if o.TabWidth > 0 {
		return o.TabWidth
	}
	return DefaultTabWidth
}

// JSONOpts configures JSON output of diagnostics and tokens.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	BaseDir          string
}

// TokenOpts configures the human-readable token table.
type TokenOpts struct {
	Color    bool
	PathMode PathMode
	BaseDir  string
}
