// Package cli provides command-line argument parsing for workbench.
//
// The package is built around a static option registry: every
// recognized flag is described by an OptionSpec (name, optional short
// letter, value arity, value kind). Parse walks the argument vector
// left to right against that registry and produces an Args value, a
// presence-tracking map plus the ordered positional arguments. The
// parser never fills defaults; a key exists only if the flag occurred.
//
// Notable rules:
//   - "--" terminates option parsing; the rest is positional verbatim.
//   - Value options accept "--name=value" or a following token, but a
//     following token that starts with "-" is never consumed as a value.
//   - Short flags cluster ("-nr") and map only to boolean options.
//   - "-v" is overloaded by repetition within one token: a single v
//     means --version, "-vv" and longer mean --verbose.
//
// Example usage:
//
//	args, err := cli.Parse(os.Args[1:])
//	if err != nil {
//	    var perr *cli.ParseError
//	    if errors.As(err, &perr) {
//	        ui.Fail("%v", perr)
//	    }
//	    os.Exit(1)
//	}
//
//	if args.Verbose() {
//	    // trace-level logging requested
//	}
package cli
