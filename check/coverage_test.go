package check

import (
	"testing"

	roboto "github.com/googlefonts/roboto-2"
	"github.com/stretchr/testify/assert"
)

func TestPUAExtras(t *testing.T) {
	// a mapping with one legacy and one stray private-use code point
	mapping := map[rune]bool{0xF6C3: true, 0xE001: true, 'A': true}
	extras := puaExtras(func(r rune) bool { return mapping[r] })
	assert.Equal(t, []rune{0xE001}, extras, "expected only the stray code point to be reported")

	// legacy code points alone are fine
	legacyOnly := func(r rune) bool { return roboto.IsLegacyPUA(r) }
	assert.Empty(t, puaExtras(legacyOnly))

	// nothing mapped at all is fine, too
	assert.Empty(t, puaExtras(func(rune) bool { return false }))
}
