package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileStrippedNewline is set when one trailing '\n' was dropped at load.
	FileStrippedNewline
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
// Content and Lines are immutable once the file is added to a FileSet.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Lines   LineIndex
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, counted in bytes from the line start
}
