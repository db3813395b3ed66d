package config

import (
	"os"
	"path/filepath"
)

// BaseDataDir returns the process-wide base data directory: the
// WORKBENCH_DATA_DIR override when set, otherwise ~/.workbench.
func BaseDataDir(environ Environment) (string, error) {
	if environ.DataDir != "" {
		return environ.DataDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".workbench"), nil
}

// DefaultUserDataDir is where settings, state, and logs live unless
// --user-data-dir says otherwise.
func DefaultUserDataDir(base string) string {
	return filepath.Join(base, "data")
}

// DefaultExtensionsDir is where installed extensions live unless
// --extensions-dir says otherwise.
func DefaultExtensionsDir(base string) string {
	return filepath.Join(base, "extensions")
}
