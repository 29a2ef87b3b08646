package regression

import (
	"testing"

	"github.com/googlefonts/roboto-2/fontload"
)

// fixtureSet hands the shared loaded-fonts snapshot to a suite. It skips
// the calling test when no build artifacts are present, and fails it when
// the artifact set cannot be loaded (e.g. wrong file count).
func fixtureSet(t *testing.T) *fontload.Set {
	t.Helper()
	set, err := Fixture()
	if err != nil {
		t.Fatalf("cannot load font fixture: %v", err)
	}
	if set.Len() == 0 {
		t.Skip("no font artifacts found; set ROBOTO_FONTS to run the regression suite")
	}
	return set
}
