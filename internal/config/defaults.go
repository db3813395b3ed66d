package config

import (
	"context"

	"github.com/workbench-dev/workbench/internal/cli"
	"github.com/workbench-dev/workbench/internal/logging"
)

// Resolved is the parsed argument set after default injection. The
// directory fields are always populated; LogLevel stays empty when no
// explicit flag or valid environment value determined one.
type Resolved struct {
	Args *cli.Args

	UserDataDir   string
	ExtensionsDir string

	LogLevel string
	Verbose  bool
}

// Resolve fills unset fields of args with computed defaults and
// settles the logging configuration. It consults the filesystem and
// the environment snapshot but never fails on invalid environment
// values; those degrade silently per the precedence rules.
//
// Precedence for the final level, highest first: --verbose (forces
// trace), --log, a valid WORKBENCH_LOG_LEVEL. Whenever a level is
// resolved it is propagated back into the environment and into the
// global logger.
func Resolve(ctx context.Context, args *cli.Args, environ Environment) (*Resolved, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := &Resolved{Args: args}

	base, err := BaseDataDir(environ)
	if err != nil {
		return nil, err
	}

	if dir, ok := args.UserDataDir(); ok {
		r.UserDataDir = dir
	} else {
		r.UserDataDir = DefaultUserDataDir(base)
	}

	if dir, ok := args.ExtensionsDir(); ok {
		r.ExtensionsDir = dir
	} else {
		r.ExtensionsDir = DefaultExtensionsDir(base)
	}

	logFlag, hasLogFlag := args.LogLevel()

	switch {
	case args.Verbose():
		r.LogLevel = "trace"
		r.Verbose = true

	case hasLogFlag:
		r.LogLevel = logFlag
		r.Verbose = logFlag == "trace"

	case logging.IsValid(environ.LogLevel):
		r.LogLevel = environ.LogLevel
		r.Verbose = r.LogLevel == "trace"
	}
	// No branch taken: no level could be determined, and an invalid
	// environment value is ignored rather than raised.

	if r.LogLevel != "" {
		propagateLogLevel(r.LogLevel)
		logging.SetLevel(r.LogLevel)
	}

	return r, nil
}
