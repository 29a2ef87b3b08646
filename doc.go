/*
Package roboto holds family-wide fixed data for the Roboto fonts, together
with the pure classification helpers shared by the validation harness.

The values in this package pin the expected outcome of the family's build:
naming records, vendor and embedding flags, vertical metrics, and the legacy
private-use code points that must survive every rebuild. They are constants
of the family, not derived at runtime; the one exception is the build
number, which is read from a small data file embedded at compile time.

Style classification works on the font's full name. The family's naming
convention is stable, so classification is plain substring matching: a name
contains "Italic" if and only if the font is an italic. The matching rules
are not generalized beyond this convention.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package roboto
