/*
Package fontload discovers and loads the font binaries under test.

Load resolves glob patterns into an ordered file list, parses every file
and returns an immutable Set, the loaded-fonts fixture of one suite run.
The Set is created once, before any validator executes, and is handed to
validators explicitly; there is no hidden global state.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fontload

import (
	"errors"
	"fmt"
	"path/filepath"

	roboto "github.com/googlefonts/roboto-2"
	"github.com/googlefonts/roboto-2/ot"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'roboto.fontload'
func tracer() tracing.Trace {
	return tracing.Select("roboto.fontload")
}

// ErrFontCount means the resolved file set does not have the expected size.
// A wrong font-set size would invalidate every downstream assertion, so
// loading fails before any font is parsed.
var ErrFontCount = errors.New("fontload: unexpected number of font files")

// LoadedFont is one discovered font binary together with its parsed view
// and the style descriptor classified from the font's full name at
// discovery time.
type LoadedFont struct {
	Path  string
	Font  *ot.Font
	Style roboto.Style
}

// Set is the loaded-fonts fixture of one suite run: every font resolved
// from the configured patterns, in pattern order first and filesystem match
// order second. A Set is read-only for all consumers.
type Set struct {
	fonts []LoadedFont
}

// Load expands the glob patterns, parses every resolved file and returns
// the fixture Set.
//
// If expectedCount is positive, Load fails with ErrFontCount when the
// number of resolved files differs; silently testing a partial or doubled
// font set must not happen. A non-positive expectedCount disables the
// guard.
func Load(patterns []string, expectedCount int) (*Set, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("fontload: bad pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	if expectedCount > 0 && len(files) != expectedCount {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrFontCount, len(files), expectedCount)
	}
	fonts := make([]LoadedFont, 0, len(files))
	for _, file := range files {
		otf, err := ot.Load(file)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("loaded font %q from %s", otf.Fontname, file)
		fonts = append(fonts, LoadedFont{
			Path:  file,
			Font:  otf,
			Style: roboto.ClassifyStyle(otf.Fontname),
		})
	}
	return &Set{fonts: fonts}, nil
}

// Fonts returns the loaded fonts in load order, index-aligned with Files.
func (s *Set) Fonts() []LoadedFont {
	if s == nil {
		return nil
	}
	return s.fonts
}

// Files returns the resolved font file paths in load order.
func (s *Set) Files() []string {
	if s == nil {
		return nil
	}
	files := make([]string, len(s.fonts))
	for i, f := range s.fonts {
		files[i] = f.Path
	}
	return files
}

// Len returns the number of loaded fonts.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fonts)
}
