package check

import (
	"fmt"
	"strings"

	roboto "github.com/googlefonts/roboto-2"
	"github.com/googlefonts/roboto-2/fontload"
	"golang.org/x/image/font/sfnt"
)

// ItalicAngle checks post.italicAngle against the font's style: italic
// fonts slant at -12 degrees, upright fonts at 0.
func ItalicAngle(f fontload.LoadedFont) error {
	post, ok := f.Font.PostInfo()
	if !ok {
		return fmt.Errorf("%s: cannot decode table post", f.Font.Fontname)
	}
	if want := f.Style.PostItalicAngle(); post.ItalicAngle != want {
		return fmt.Errorf("%s: italic angle is %g, want %g", f.Font.Fontname, post.ItalicAngle, want)
	}
	return nil
}

// MacStyle checks the bold and italic bits of head.macStyle against the
// style classified from the font's name.
func MacStyle(f fontload.LoadedFont) error {
	head, ok := f.Font.HeadInfo()
	if !ok {
		return fmt.Errorf("%s: cannot decode table head", f.Font.Fontname)
	}
	if want := f.Style.MacStyle(); head.MacStyle != want {
		return fmt.Errorf("%s: macStyle is %#04x, want %#04x", f.Font.Fontname, head.MacStyle, want)
	}
	return nil
}

// Embedding checks OS/2 fsType to be 0, which marks the font free for
// installation, embedding, etc.
func Embedding(f fontload.LoadedFont) error {
	os2, ok := f.Font.OS2Info()
	if !ok {
		return fmt.Errorf("%s: cannot decode table OS/2", f.Font.Fontname)
	}
	if os2.FsType != 0 {
		return fmt.Errorf("%s: fsType is %#04x, want 0", f.Font.Fontname, os2.FsType)
	}
	return nil
}

// VendorID checks the OS/2 vendor tag of the font.
func VendorID(f fontload.LoadedFont) error {
	os2, ok := f.Font.OS2Info()
	if !ok {
		return fmt.Errorf("%s: cannot decode table OS/2", f.Font.Fontname)
	}
	if os2.AchVendID != roboto.VendorID {
		return fmt.Errorf("%s: vendor ID is %q, want %q", f.Font.Fontname, os2.AchVendID, roboto.VendorID)
	}
	return nil
}

// WeightClass checks OS/2 usWeightClass against the numeric class of the
// weight name extracted from the font's name.
func WeightClass(f fontload.LoadedFont) error {
	os2, ok := f.Font.OS2Info()
	if !ok {
		return fmt.Errorf("%s: cannot decode table OS/2", f.Font.Fontname)
	}
	want := roboto.Weights[f.Style.Weight]
	if os2.USWeightClass != want {
		return fmt.Errorf("%s: usWeightClass is %d, want %d (%s)",
			f.Font.Fontname, os2.USWeightClass, want, f.Style.Weight)
	}
	return nil
}

// Versions checks the two version numbers of a font: the name-table version
// record must start with "Version 2.<build>", and head.fontRevision must
// round to "2.<build>" at 5-decimal accuracy.
func Versions(buildNumber string) func(fontload.LoadedFont) error {
	expected := "2." + buildNumber
	return func(f fontload.LoadedFont) error {
		version := f.Font.NameRecords()[sfnt.NameIDVersion]
		usablePart, _, _ := strings.Cut(version, ";")
		if usablePart != "Version "+expected {
			return fmt.Errorf("%s: version record is %q, want %q",
				f.Font.Fontname, usablePart, "Version "+expected)
		}
		head, ok := f.Font.HeadInfo()
		if !ok {
			return fmt.Errorf("%s: cannot decode table head", f.Font.Fontname)
		}
		if revision := roboto.Revision(head.FontRevision); revision != expected {
			return fmt.Errorf("%s: font revision is %s, want %s", f.Font.Fontname, revision, expected)
		}
		return nil
	}
}
