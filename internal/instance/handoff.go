package instance

import (
	"os"
	"path/filepath"
	"strings"
)

// handoffName is the well-known file a running instance publishes its
// endpoint to. The service owns the write side; this package only
// reads it.
const handoffName = "workbench-ipc"

// HandoffPath returns the fixed hand-off file location in the system
// temp directory.
func HandoffPath() string {
	return filepath.Join(os.TempDir(), handoffName)
}

// readHandoff returns the published endpoint and whether one exists.
// A missing, unreadable, or empty file all read as "no endpoint".
func readHandoff(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	endpoint := strings.TrimSpace(string(data))
	if endpoint == "" {
		return "", false
	}

	return endpoint, true
}
