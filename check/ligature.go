package check

import (
	"fmt"

	"github.com/googlefonts/roboto-2/fontload"
	"github.com/googlefonts/roboto-2/layout"
)

// FFLigature checks that the "ff" pair is not ligated by default shaping:
// the shaped output must carry one advance per 'f'.
func FFLigature(f fontload.LoadedFont) error {
	advances := layout.AdvancesWithFace("ff", f.Font.Face())
	if len(advances) != 2 {
		return fmt.Errorf("%s: shaping \"ff\" yields %d glyphs, want 2", f.Font.Fontname, len(advances))
	}
	return nil
}
