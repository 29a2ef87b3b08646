/*
Package ot is a read-only view onto the OpenType tables of one font binary.

Container parsing, character-map resolution and glyph metrics are delegated
to go-text/typesetting; this package only decodes the handful of fixed
header fields the family's validators consume (head, hhea, OS/2, post and
the name table), directly from the raw table bytes.

A Font is parsed once and never mutated afterwards, so one instance may be
shared freely between validators.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ot

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'roboto.ot'
func tracer() tracing.Trace {
	return tracing.Select("roboto.ot")
}
