package driver

// Options configures one run of the pipeline.
type Options struct {
	// StripTrailingNewline drops one final '\n' after loading.
	StripTrailingNewline bool
	// NormalizeNFC rewrites the input to Unicode NFC before scanning.
	NormalizeNFC bool
	// MaxTokenLength bounds a single lexeme; 0 means no limit.
	MaxTokenLength int
	// Parse runs the grammar layer over the tokens.
	Parse bool
	// Observer, if set, receives phase boundaries.
	Observer PhaseObserver
}
