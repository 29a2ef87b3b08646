package check

import (
	"fmt"

	roboto "github.com/googlefonts/roboto-2"
	"github.com/googlefonts/roboto-2/fontload"
	"golang.org/x/image/font/sfnt"
)

// Copyright checks the name-table copyright record against the family's
// fixed copyright message.
func Copyright(f fontload.LoadedFont) error {
	if c := f.Font.NameRecords()[sfnt.NameIDCopyright]; c != roboto.Copyright {
		return fmt.Errorf("%s: copyright record is %q, want %q", f.Font.Fontname, c, roboto.Copyright)
	}
	return nil
}

// FamilyName checks the family-name record (name ID 1) to be either the
// base family name or its Condensed variant, and the typographic family
// record (name ID 16), if present, to repeat it.
func FamilyName(base string) func(fontload.LoadedFont) error {
	condensed := base + " Condensed"
	return func(f fontload.LoadedFont) error {
		records := f.Font.NameRecords()
		family := records[sfnt.NameIDFamily]
		if family != base && family != condensed {
			return fmt.Errorf("%s: family record is %q, want %q or %q",
				f.Font.Fontname, family, base, condensed)
		}
		if typographic, ok := records[sfnt.NameIDTypographicFamily]; ok && typographic != family {
			return fmt.Errorf("%s: typographic family %q differs from family record %q",
				f.Font.Fontname, typographic, family)
		}
		return nil
	}
}
