// Package testfonts hands real font binaries to package tests, so unit
// tests can exercise table decoding and shaping without font files checked
// into this repository. The binaries come from the go-text test-data
// module.
package testfonts

import (
	"os"
	"path/filepath"
	"testing"

	td "github.com/go-text/typesetting-utils/opentype"
)

// RobotoBoldItalic is the path, inside the go-text test-data module, of a
// genuine Roboto Bold Italic build.
const RobotoBoldItalic = "common/Roboto-BoldItalic.ttf"

// Binary returns the raw bytes of one embedded test font.
func Binary(t *testing.T, path string) []byte {
	t.Helper()
	data, err := td.Files.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read embedded test font %s: %v", path, err)
	}
	return data
}

// WriteFile materializes an embedded test font in dir and returns the file
// path, for tests that exercise file-based loading.
func WriteFile(t *testing.T, dir, path string) string {
	t.Helper()
	target := filepath.Join(dir, filepath.Base(path))
	if err := os.WriteFile(target, Binary(t, path), 0o644); err != nil {
		t.Fatalf("cannot write test font %s: %v", target, err)
	}
	return target
}
