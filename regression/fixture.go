/*
Package regression is the build-artifact regression suite for the Roboto
family. The suite loads every font binary matched by the configured glob
patterns exactly once, then runs one independent validator class per
concern against the shared snapshot.

Configuration comes from the environment, since the invoking build selects
the artifacts:

	ROBOTO_FONTS       comma-separated glob patterns (default "out/*.ttf")
	ROBOTO_FONT_COUNT  exact number of expected font files (0 disables the guard)
	ROBOTO_FAMILY      family base name (default "Roboto")

Test classes skip when no artifacts match, so the suite is a no-op on
checkouts without build output. Tests must not run in parallel: they all
read the one shared fixture.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package regression

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/googlefonts/roboto-2/fontload"
)

// Config is the suite configuration resolved from the environment.
type Config struct {
	Patterns      []string
	ExpectedCount int
	Family        string
}

// FromEnv resolves the suite configuration, falling back to the defaults
// of a local family build.
func FromEnv() Config {
	cfg := Config{
		Patterns: []string{"out/*.ttf"},
		Family:   "Roboto",
	}
	if v := os.Getenv("ROBOTO_FONTS"); v != "" {
		cfg.Patterns = strings.Split(v, ",")
	}
	if v := os.Getenv("ROBOTO_FONT_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ExpectedCount = n
		}
	}
	if v := os.Getenv("ROBOTO_FAMILY"); v != "" {
		cfg.Family = v
	}
	return cfg
}

var (
	loadOnce sync.Once
	loaded   *fontload.Set
	loadErr  error
)

// Fixture loads the configured font set exactly once per test process and
// hands the same read-only snapshot to every caller.
func Fixture() (*fontload.Set, error) {
	loadOnce.Do(func() {
		cfg := FromEnv()
		loaded, loadErr = fontload.Load(cfg.Patterns, cfg.ExpectedCount)
	})
	return loaded, loadErr
}
