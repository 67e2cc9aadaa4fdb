package source

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// ErrInvalidUTF8 reports source bytes that are not well-formed UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// LoadOptions controls the normalisation applied by FileSet.Load.
type LoadOptions struct {
	// StripTrailingNewline drops one final '\n' before the buffer is indexed.
	StripTrailingNewline bool
	// NormalizeNFC rewrites the buffer into Unicode normalization form C.
	NormalizeNFC bool
}

// FileSet manages a collection of source files.
type FileSet struct {
	files   []File
	index   map[string]FileID // path -> id
	baseDir string            // базовая директория для относительных путей
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// SetBaseDir устанавливает базовую директорию для относительных путей.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.baseDir = dir
}

// BaseDir возвращает текущую базовую директорию.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add stores a file from normalized bytes, builds its line index and hash,
// and returns a new FileID. Re-adding a path creates a new version.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) (FileID, error) {
	lines, err := BuildLineIndex(content)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		return 0, fmt.Errorf("len files overflow: %w", err)
	}
	normalizedPath := normalizePath(path)
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		Lines:   lines,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	// Всегда обновляем индекс на последнюю версию файла
	fileSet.index[normalizedPath] = id
	return id, nil
}

// Load reads a file from disk, validates its encoding, normalizes it and
// calls Add. Invalid UTF-8 is reported once here and wraps ErrInvalidUTF8.
func (fileSet *FileSet) Load(path string, opts LoadOptions) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fileSet.addNormalized(path, content, 0, opts)
}

// AddVirtual adds an in-memory file with the FileVirtual flag. The content is
// taken as is: no normalisation or encoding check is applied.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	id, err := fileSet.Add(name, content, FileVirtual)
	if err != nil {
		panic(fmt.Errorf("add virtual file %q: %w", name, err))
	}
	return id
}

// LoadVirtual runs the Load pipeline over in-memory content.
func (fileSet *FileSet) LoadVirtual(name string, content []byte, opts LoadOptions) (FileID, error) {
	return fileSet.addNormalized(name, content, FileVirtual, opts)
}

func (fileSet *FileSet) addNormalized(path string, content []byte, flags FileFlags, opts LoadOptions) (FileID, error) {
	if err := validateUTF8(content); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if opts.NormalizeNFC {
		var changed bool
		if content, changed = normalizeNFC(content); changed {
			flags |= FileNormalizedNFC
		}
	}
	if opts.StripTrailingNewline {
		var stripped bool
		if content, stripped = stripTrailingNewline(content); stripped {
			flags |= FileStrippedNewline
		}
	}
	return fileSet.Add(path, content, flags)
}

// Get returns the file metadata for the given ID, or nil if unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol, err error) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}, fmt.Errorf("unknown file id %d", span.File)
	}
	if start, err = f.Lines.Lookup(span.Start); err != nil {
		return LineCol{}, LineCol{}, err
	}
	if end, err = f.Lines.Lookup(span.End); err != nil {
		return LineCol{}, LineCol{}, err
	}
	return start, end, nil
}

// Text returns the source text covered by span, clamped to the buffer.
func (f *File) Text(span Span) string {
	n := uint32(len(f.Content))
	start, end := min(span.Start, n), min(span.End, n)
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// GetLine возвращает строку с заданным номером (1-based) без '\n'.
// Если строка не существует, возвращает пустую строку.
func (f *File) GetLine(lineNum uint32) string {
	start, end, err := f.Lines.LineBounds(lineNum)
	if err != nil {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath форматирует путь к файлу в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path

	case "basename":
		return BaseName(f.Path)

	case "auto":
		// короткий или относительный путь - как есть, иначе basename
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)

	default:
		return f.Path
	}
}
