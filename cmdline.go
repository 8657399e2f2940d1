// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package cmdline provides support for command-line processing.
//
// A Command declares options and flags, optionally nested subcommands, and is then parsed:
//
//	app := cmdline.NewCommand("app")
//	_ = app.Flag("v,verbose", "be chatty").Register()
//	_ = app.Option("n,count", "repetitions").Type(types.KindInt).Register()
//	res := app.Parse(os.Args[1:])
//	if res.Failed() {
//		fmt.Fprintln(os.Stderr, res.ErrorMessage())
//	}
//	n, _ := cmdline.TryGet[int](res, "count")
//
// Options are matched as --long, --long=value, -s, -s value and, with POSIX grouping (the default),
// clusters such as -abc or -d5. Values are coerced to the declared kind, then checked against
// environment fallbacks, defaults, required constraints and validators. Parsing never stops at the
// first problem: every error found is reported in the Result. A bare -- ends option processing and
// everything after it is available from Result.RemainingArgs.
package cmdline

import (
	"github.com/napalu/cmdline/parse"
)

// Parse processes args (without the program name) against the command tree. The Command is not
// modified, so Parse may be called repeatedly and from several goroutines.
func (c *Command) Parse(args []string) *Result {
	return c.parse(args, nil)
}

// ParseWithDefaults calls Parse supplementing options absent from args and from the environment with the
// textual values in defaults, keyed by option name. They take precedence over declared defaults.
func (c *Command) ParseWithDefaults(defaults map[string]string, args []string) *Result {
	return c.parse(args, defaults)
}

// ParseString splits argString the way a POSIX shell would and calls Parse
func (c *Command) ParseString(argString string) (*Result, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return c.Parse(args), nil
}

// ParseArgv calls Parse on a full process argument vector such as os.Args, dropping the program name
func (c *Command) ParseArgv(argv []string) *Result {
	if len(argv) == 0 {
		return c.Parse(nil)
	}

	return c.Parse(argv[1:])
}
