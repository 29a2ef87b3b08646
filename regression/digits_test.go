package regression

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/googlefonts/roboto-2/check"
	"github.com/googlefonts/roboto-2/fontload"
)

// DigitWidthsSuite tests the advance widths of the decimal digits.
type DigitWidthsSuite struct {
	suite.Suite
	set   *fontload.Set
	fonts []fontload.LoadedFont
}

// listen for 'go test' command --> run test methods
func TestDigitWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "roboto.check")
	defer teardown()
	suite.Run(t, &DigitWidthsSuite{set: fixtureSet(t)})
}

func (env *DigitWidthsSuite) SetupSuite() {
	env.fonts = env.set.Fonts()
}

// TestDigitWidths tests all decimal digits of all fonts to share one
// advance width.
func (env *DigitWidthsSuite) TestDigitWidths() {
	for _, f := range env.fonts {
		env.NoError(check.DigitWidths(f))
	}
}
