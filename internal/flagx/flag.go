// Package flagx lets independent config stages parse their own flags without
// tripping over each other's.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Filter returns only the arguments belonging to the allowed flags, in their
// original order. Both "-f value" and "-f=value" spellings are kept; any
// other flag (and its value) is dropped.
func Filter(args []string, allowed ...string) []string {
	want := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		want[f] = struct{}{}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := want[name]; ok {
				kept = append(kept, arg)
			}
			continue
		}

		if _, ok := want[arg]; ok {
			kept = append(kept, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				kept = append(kept, args[i+1])
				i++
			}
		}
	}
	return kept
}

// ConfigFileFlag extracts the JSON config path given via -c or -config,
// ignoring every other argument. Returns "" when neither flag is present.
func ConfigFileFlag() string {
	var path string

	args := Filter(os.Args[1:], "-c", "-config")

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(args)

	return path
}
