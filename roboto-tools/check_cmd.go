package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"

	"github.com/googlefonts/roboto-2/check"
	"github.com/googlefonts/roboto-2/fontload"
)

func runCheckCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	patterns := splitPatterns(args["patterns"].Value)
	if len(patterns) == 0 {
		fatalf("at least one glob pattern is required")
	}
	count := mustFlagInt(flags["count"], "count")
	family := mustFlagString(flags["family"], "family")
	build := mustFlagString(flags["build"], "build")
	verbose := mustFlagBool(flags["verbose"], "verbose")

	set, err := fontload.Load(patterns, count)
	if err != nil {
		fatalf("%v", err)
	}
	if set.Len() == 0 {
		fatalf("no font files match %s", strings.Join(patterns, ", "))
	}
	if verbose {
		for _, f := range set.Fonts() {
			pterm.Info.Printf("checking %s (%s)\n", f.Font.Fontname, f.Path)
		}
	}

	checks := check.All(family, build)
	failures := check.Run(set, checks)
	if len(failures) == 0 {
		pterm.Success.Printf("%d fonts passed all %d checks\n", set.Len(), len(checks))
		return
	}
	for _, failure := range failures {
		pterm.Error.Printf("[%s] %v\n", failure.Check, failure.Err)
	}
	fatalf("%d check failures", len(failures))
}

// splitPatterns splits commando's comma-joined variadic argument value.
func splitPatterns(value string) []string {
	var patterns []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			patterns = append(patterns, part)
		}
	}
	return patterns
}
