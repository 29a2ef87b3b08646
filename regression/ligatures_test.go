package regression

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/googlefonts/roboto-2/fontload"
	"github.com/googlefonts/roboto-2/layout"
)

// LigaturesSuite tests formation, or lack of formation, of ligatures.
type LigaturesSuite struct {
	suite.Suite
	set       *fontload.Set
	fontfiles []string
}

// listen for 'go test' command --> run test methods
func TestLigatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "roboto.layout")
	defer teardown()
	suite.Run(t, &LigaturesSuite{set: fixtureSet(t)})
}

func (env *LigaturesSuite) SetupSuite() {
	env.fontfiles = env.set.Files()
}

// TestLackOfFFLigature tests that the ff ligature is not formed by default
// shaping: "ff" must shape into exactly two glyph advances.
func (env *LigaturesSuite) TestLackOfFFLigature() {
	for _, fontfile := range env.fontfiles {
		advances, err := layout.Advances("ff", fontfile)
		env.Require().NoError(err, "cannot shape with font %s", fontfile)
		env.Len(advances, 2, "expected no ff ligature in %s", fontfile)
	}
}
