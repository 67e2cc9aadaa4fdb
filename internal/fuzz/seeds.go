package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

// inlineSeeds covers every token class and the common error paths.
var inlineSeeds = []string{
	"",
	"let x = 1;",
	"fn main() -> int { return 0; }",
	"let s = \"a\\tb\\x41\";",
	"let c = '\\n';",
	"let f = 1.5 + 5.;",
	"x <<= y >>= z **= w",
	"\"unterminated",
	"''",
	"'\\q'",
	"let x = `;",
	"struct P { x: int, y: int }\nenum E { A, B };",
	"fn f() { (]",
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.fl файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".fl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
