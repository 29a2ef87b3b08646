package roboto

import (
	_ "embed"
	"fmt"
	"strings"
)

// The build number is recorded by the release tooling and embedded here, so
// version checks compare against the build that actually produced the
// binaries under test.
//
//go:embed res/buildnumber.txt
var buildNumber string

// BuildNumber returns the build number of the current release, e.g. "00955".
func BuildNumber() string {
	n := strings.TrimSpace(buildNumber)
	tracer().Debugf("font build number is %s", n)
	return n
}

// ExpectedVersion returns the version designator every binary of the build
// must carry, e.g. "2.00955".
func ExpectedVersion() string {
	return "2." + BuildNumber()
}

// Revision formats a 16.16 fixed-point font revision (head.fontRevision)
// with 5 decimal digits, the accuracy used when comparing against the
// version designator.
func Revision(fixed1616 uint32) string {
	whole := fixed1616 >> 16
	frac := uint64(fixed1616 & 0xFFFF)
	scaled := (frac*100000 + 0x8000) / 0x10000
	return fmt.Sprintf("%d.%05d", whole, scaled)
}
