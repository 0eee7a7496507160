package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture reads a document fixture from the package's testdata directory.
func LoadFixture(tb testing.TB, name string) string {
	tb.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		tb.Fatalf("load fixture %s: %v", name, err)
	}
	return string(data)
}
