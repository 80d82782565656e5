// Command checkpath validates that the given filesystem paths exist, exiting non-zero when any are missing.
// It's a thin front-end over the check package's path check, mostly useful in scripts and CI steps.
//
//	checkpath [-q] [-m MESSAGE] PATH [PATH...]
//
// Like any other consumer of the check package, it respects the CHECKX_RUN environment variable: when checks are disabled, every path passes.
package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/checkx/check"
	"github.com/saylorsolutions/checkx/env"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("checkpath", flag.ContinueOnError)
	var (
		quiet   = fs.BoolP("quiet", "q", env.Bool("CHECKPATH_QUIET", false), "Suppresses output, reporting only through the exit code")
		message = fs.StringP("message", "m", "", "Custom failure message instead of the missing path list")
	)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "USAGE: checkpath [-q] [-m MESSAGE] PATH [PATH...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return 2
	}

	var opts []check.Option
	if len(*message) > 0 {
		opts = append(opts, check.Msg(*message))
	}
	if err := check.PathsExist(paths, opts...); err != nil {
		if !*quiet {
			for _, missing := range check.FindMissingPaths(paths...) {
				fmt.Fprintf(os.Stderr, "missing: %s\n", missing)
			}
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
