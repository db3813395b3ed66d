package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// Environment variable names the front-end consumes and produces.
const (
	// EnvIPCHook is set by a running instance inside its integrated
	// terminal; its value is the endpoint child invocations must
	// forward to.
	EnvIPCHook = "WORKBENCH_IPC_HOOK_CLI"

	// EnvLogLevel carries a requested log level. The defaults resolver
	// rewrites it with the final level so child processes agree.
	EnvLogLevel = "WORKBENCH_LOG_LEVEL"

	// EnvDataDir overrides the base data directory.
	EnvDataDir = "WORKBENCH_DATA_DIR"
)

// Environment is the process environment snapshot taken once at
// startup. All fields are optional.
type Environment struct {
	IPCHook  string `env:"WORKBENCH_IPC_HOOK_CLI"`
	LogLevel string `env:"WORKBENCH_LOG_LEVEL"`
	DataDir  string `env:"WORKBENCH_DATA_DIR"`
}

// LoadEnvironment reads the variables workbench cares about.
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, err
	}
	return e, nil
}

// propagateLogLevel writes the resolved level back into the process
// environment so exec'd children observe the same verbosity.
func propagateLogLevel(level string) {
	_ = os.Setenv(EnvLogLevel, level)
}
