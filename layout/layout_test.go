package layout

import (
	"bytes"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/googlefonts/roboto-2/internal/testfonts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ShapingTestEnviron struct {
	suite.Suite
	face     *font.Face
	fontfile string
}

// listen for 'go test' command --> run test methods
func TestShaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "roboto.layout")
	defer teardown()
	suite.Run(t, new(ShapingTestEnviron))
}

// run once, before test suite methods
func (env *ShapingTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	data := testfonts.Binary(env.T(), testfonts.RobotoBoldItalic)
	face, err := font.ParseTTF(bytes.NewReader(data))
	env.Require().NoError(err, "cannot parse embedded test font")
	env.face = face
	env.fontfile = testfonts.WriteFile(env.T(), env.T().TempDir(), testfonts.RobotoBoldItalic)
}

// --- Tests -----------------------------------------------------------------

func (env *ShapingTestEnviron) TestOneGlyphPerLetter() {
	advances := AdvancesWithFace("abc", env.face)
	env.Require().Len(advances, 3, "expected one glyph per letter")
	for i, adv := range advances {
		env.Positive(int(adv), "expected a positive advance for glyph %d", i)
	}
}

func (env *ShapingTestEnviron) TestNoFFLigature() {
	advances := AdvancesWithFace("ff", env.face)
	env.Len(advances, 2, "expected 'ff' to shape into two glyphs, not a ligature")
}

func (env *ShapingTestEnviron) TestEmptyText() {
	env.Nil(AdvancesWithFace("", env.face))
	env.Nil(AdvancesWithFace("abc", nil))
}

func (env *ShapingTestEnviron) TestAdvancesFromFile() {
	advances, err := Advances("ff", env.fontfile)
	env.Require().NoError(err)
	env.Len(advances, 2)
}

func (env *ShapingTestEnviron) TestAdvancesMissingFile() {
	_, err := Advances("ff", "no/such/font.ttf")
	env.Error(err)
}
