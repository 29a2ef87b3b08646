/*
Package check implements the per-category validators of the family's
regression suite.

Every check inspects one loaded font and returns nil when the font matches
the family's fixed expectations, or an error naming the font and the
offending value. Checks never mutate the font, and a failing check is
independent of its siblings; callers decide whether to stop or collect.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package check

import (
	"github.com/googlefonts/roboto-2/fontload"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'roboto.check'
func tracer() tracing.Trace {
	return tracing.Select("roboto.check")
}

// A Check is one named validation concern, applied per font.
type Check struct {
	Name string
	Run  func(f fontload.LoadedFont) error
}

// All returns every validator of the family, configured for a family base
// name (e.g. "Roboto") and the expected build number.
func All(familyName, buildNumber string) []Check {
	return []Check{
		{"italic-angle", ItalicAngle},
		{"mac-style", MacStyle},
		{"embedding", Embedding},
		{"vendor-id", VendorID},
		{"weight-class", WeightClass},
		{"version", Versions(buildNumber)},
		{"copyright", Copyright},
		{"family-name", FamilyName(familyName)},
		{"digit-widths", DigitWidths},
		{"legacy-pua", LegacyPUA},
		{"no-other-pua", NoOtherPUA},
		{"no-unassigned", NoUnassignedChars},
		{"sound-recording-copyright", SoundRecordingCopyright},
		{"vertical-limits", VerticalLimits},
		{"line-metrics", LineMetrics},
		{"ff-ligature", FFLigature},
	}
}

// Failure records one check failing for one font.
type Failure struct {
	Check string
	Path  string
	Err   error
}

// Run applies every check to every font of the set and collects the
// failures. An empty result means the whole set passed.
func Run(set *fontload.Set, checks []Check) []Failure {
	var failures []Failure
	for _, c := range checks {
		for _, f := range set.Fonts() {
			if err := c.Run(f); err != nil {
				tracer().Infof("check %s failed: %v", c.Name, err)
				failures = append(failures, Failure{Check: c.Name, Path: f.Path, Err: err})
			}
		}
	}
	return failures
}
