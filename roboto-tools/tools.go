package main

import (
	"fmt"
	"os"

	"github.com/thatisuday/commando"

	roboto "github.com/googlefonts/roboto-2"
)

func main() {
	commando.
		SetExecutableName("roboto-tools").
		SetVersion("v2.0.0").
		SetDescription("CLI for validating compiled Roboto font binaries against the family's fixed expectations.")

	commando.
		Register("check").
		SetDescription("Run every family validator against the font files matched by the glob patterns.").
		SetShortDescription("validate font binaries").
		AddArgument("patterns...", "glob patterns of font files (variadic argument parts joined by comma by commando)", "").
		AddFlag("count,c", "exact number of font files expected (0 disables the guard)", commando.Int, 0).
		AddFlag("family,f", "family base name", commando.String, "Roboto").
		AddFlag("build,b", "expected build number", commando.String, roboto.BuildNumber()).
		AddFlag("verbose,V", "list every font as it is checked", commando.Bool, nil).
		SetAction(runCheckCommand)

	commando.
		Register("info").
		SetDescription("Print identity, style and metric information for one font binary.").
		SetShortDescription("font identity").
		AddArgument("font", "font file path", "").
		SetAction(runInfoCommand)

	commando.Parse(nil)
}

// --- Flag helpers ------------------------------------------------------

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "roboto-tools: "+format+"\n", args...)
	os.Exit(1)
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	v, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return v
}

func mustFlagString(flag commando.FlagValue, name string) string {
	v, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return v
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	v, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return v
}
