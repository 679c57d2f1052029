// Package flagx contains small helpers for command-line flag handling that
// the server and client binaries share.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs filters args down to the flags named in allowed, keeping their
// values. Flags may appear either as two arguments ("-c waflow.json") or as a
// single "--config=waflow.json" argument. Anything else is dropped, which lets
// a package parse the couple of flags it cares about without tripping over
// flags owned by other packages.
func FilterArgs(args []string, allowed []string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		keep[name] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") {
			if eq := strings.IndexByte(arg, '='); eq >= 0 {
				// "--flag=value" travels as one argument
				if _, ok := keep[arg[:eq]]; ok {
					out = append(out, arg)
				}
				continue
			}
			if _, ok := keep[arg]; ok {
				out = append(out, arg)
				// value, if any, is the next non-flag argument
				if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
					out = append(out, args[i+1])
					i++
				}
			}
		}
	}

	return out
}

// JsonConfigFlags returns the config file path given via -c or -config, or an
// empty string when neither flag is present. Only those two flags are looked
// at, so the rest of os.Args stays untouched for later flag sets.
func JsonConfigFlags() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return path
}
