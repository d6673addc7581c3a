// Package flagx lets several flag sets share one os.Args without tripping
// over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the flags named in valueFlags or boolFlags (and the
// values that belong to them), dropping everything else.
//
// Accepted forms:
//
//	-a value       value flag, value in the next token
//	-a=value       any flag, value glued with '='
//	-p             bool flag, never consumes the next token
//
// A token starting with '-' is never taken as a value.
func FilterArgs(args []string, valueFlags []string, boolFlags ...string) []string {
	kinds := make(map[string]bool, len(valueFlags)+len(boolFlags))
	for _, f := range valueFlags {
		kinds[f] = true
	}
	for _, f := range boolFlags {
		kinds[f] = false
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := kinds[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, ok := kinds[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)

		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFileFlag returns the JSON config path given with -c or -config, or
// an empty string when neither is present.
func ConfigFileFlag() string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}
