package fontload

import (
	"errors"
	"path/filepath"
	"testing"

	roboto "github.com/googlefonts/roboto-2"
	"github.com/googlefonts/roboto-2/internal/testfonts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type LoadTestEnviron struct {
	suite.Suite
	dir      string // temp directory holding one real font binary
	fontfile string
}

// listen for 'go test' command --> run test methods
func TestFontLoading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "roboto.fontload")
	defer teardown()
	suite.Run(t, new(LoadTestEnviron))
}

// run once, before test suite methods
func (env *LoadTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	env.dir = env.T().TempDir()
	env.fontfile = testfonts.WriteFile(env.T(), env.dir, testfonts.RobotoBoldItalic)
}

// --- Tests -----------------------------------------------------------------

func (env *LoadTestEnviron) TestLoadSingleFont() {
	set, err := Load([]string{filepath.Join(env.dir, "*.ttf")}, 1)
	env.Require().NoError(err)
	env.Equal(1, set.Len())
	env.Equal([]string{env.fontfile}, set.Files())

	f := set.Fonts()[0]
	env.Equal(env.fontfile, f.Path)
	env.Contains(f.Font.Fontname, "Roboto")
	env.True(f.Style.Bold, "expected bold style classified from the font name")
	env.True(f.Style.Italic, "expected italic style classified from the font name")
	env.Equal(roboto.Bold, f.Style.Weight)
}

func (env *LoadTestEnviron) TestCountGuard() {
	_, err := Load([]string{filepath.Join(env.dir, "*.ttf")}, 18)
	env.Require().Error(err)
	env.True(errors.Is(err, ErrFontCount), "expected ErrFontCount, got %v", err)
}

func (env *LoadTestEnviron) TestCountGuardDisabled() {
	set, err := Load([]string{filepath.Join(env.dir, "*.ttf")}, 0)
	env.Require().NoError(err, "a non-positive count must not guard the set size")
	env.Equal(1, set.Len())
}

func (env *LoadTestEnviron) TestPatternOrderPreserved() {
	// the same pattern twice resolves the same file twice, in order
	p := filepath.Join(env.dir, "*.ttf")
	set, err := Load([]string{p, p}, 2)
	env.Require().NoError(err)
	env.Equal([]string{env.fontfile, env.fontfile}, set.Files())
}

func (env *LoadTestEnviron) TestEmptyMatch() {
	set, err := Load([]string{filepath.Join(env.dir, "*.otf")}, 0)
	env.Require().NoError(err)
	env.Zero(set.Len())
	env.Empty(set.Fonts())
}

func (env *LoadTestEnviron) TestBadPattern() {
	_, err := Load([]string{"[-"}, 0)
	env.Error(err, "expected a malformed glob pattern to be rejected")
}

func (env *LoadTestEnviron) TestNilSet() {
	var set *Set
	env.Zero(set.Len())
	env.Nil(set.Fonts())
	env.Nil(set.Files())
}
