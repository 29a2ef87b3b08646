package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thatisuday/commando"
	"golang.org/x/image/font/sfnt"

	roboto "github.com/googlefonts/roboto-2"
	"github.com/googlefonts/roboto-2/ot"
)

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	otf, err := ot.Load(fontPath)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Path: %s\n", fontPath)
	fmt.Printf("Name: %s\n", otf.Fontname)
	style := roboto.ClassifyStyle(otf.Fontname)
	fmt.Printf("Style: weight=%s bold=%t italic=%t condensed=%t\n",
		style.Weight, style.Bold, style.Italic, style.Condensed)

	if head, ok := otf.HeadInfo(); ok {
		fmt.Printf("Revision: %s  macStyle: %#04x  yMin/yMax: %d/%d\n",
			roboto.Revision(head.FontRevision), head.MacStyle, head.YMin, head.YMax)
	}
	if hhea, ok := otf.HHeaInfo(); ok {
		fmt.Printf("Line metrics: ascent=%d descent=%d lineGap=%d\n",
			hhea.Ascender, hhea.Descender, hhea.LineGap)
	}
	if os2, ok := otf.OS2Info(); ok {
		fmt.Printf("OS/2: weightClass=%d fsType=%#04x vendor=%q\n",
			os2.USWeightClass, os2.FsType, os2.AchVendID)
	}
	if post, ok := otf.PostInfo(); ok {
		fmt.Printf("Italic angle: %g\n", post.ItalicAngle)
	}

	records := otf.NameRecords()
	ids := make([]sfnt.NameID, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fmt.Printf("Name records (%d):\n", len(ids))
	for _, id := range ids {
		fmt.Printf("  [%3d] %s\n", id, records[id])
	}
}
