package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbench-dev/workbench/internal/cli"
)

func parseArgs(t *testing.T, tokens ...string) *cli.Args {
	t.Helper()
	args, err := cli.Parse(tokens)
	require.NoError(t, err)
	return args
}

func TestResolveDefaultDirectories(t *testing.T) {
	base := t.TempDir()
	environ := Environment{DataDir: base}

	resolved, err := Resolve(context.Background(), parseArgs(t), environ)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "data"), resolved.UserDataDir)
	assert.Equal(t, filepath.Join(base, "extensions"), resolved.ExtensionsDir)
}

func TestResolveKeepsExplicitDirectories(t *testing.T) {
	base := t.TempDir()
	custom := t.TempDir()
	environ := Environment{DataDir: base}

	args := parseArgs(t, "--user-data-dir", custom)
	resolved, err := Resolve(context.Background(), args, environ)
	require.NoError(t, err)

	assert.Equal(t, custom, resolved.UserDataDir)
	assert.Equal(t, filepath.Join(base, "extensions"), resolved.ExtensionsDir,
		"only the unset directory is defaulted")
}

func TestResolveLogPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		tokens      []string
		envLevel    string
		wantLevel   string
		wantVerbose bool
	}{
		{
			name:        "verbose wins over everything",
			tokens:      []string{"--verbose", "--log", "warn"},
			envLevel:    "error",
			wantLevel:   "trace",
			wantVerbose: true,
		},
		{
			name:        "log flag beats environment",
			tokens:      []string{"--log", "warn"},
			envLevel:    "debug",
			wantLevel:   "warn",
			wantVerbose: false,
		},
		{
			name:        "log trace implies verbose",
			tokens:      []string{"--log", "trace"},
			wantLevel:   "trace",
			wantVerbose: true,
		},
		{
			name:      "valid environment level applies",
			envLevel:  "debug",
			wantLevel: "debug",
		},
		{
			name:        "trace environment level implies verbose",
			envLevel:    "trace",
			wantLevel:   "trace",
			wantVerbose: true,
		},
		{
			name:      "invalid environment level is ignored",
			envLevel:  "loud",
			wantLevel: "",
		},
		{
			name:      "nothing set yields no level",
			wantLevel: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Resolve rewrites the level variable; t.Setenv restores it.
			t.Setenv(EnvLogLevel, tt.envLevel)
			environ := Environment{DataDir: t.TempDir(), LogLevel: tt.envLevel}

			resolved, err := Resolve(context.Background(), parseArgs(t, tt.tokens...), environ)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLevel, resolved.LogLevel)
			assert.Equal(t, tt.wantVerbose, resolved.Verbose)
		})
	}
}

func TestResolvePropagatesLevelToEnvironment(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	environ := Environment{DataDir: t.TempDir(), LogLevel: "error"}

	_, err := Resolve(context.Background(), parseArgs(t, "--log", "debug"), environ)
	require.NoError(t, err)

	assert.Equal(t, "debug", os.Getenv(EnvLogLevel),
		"child processes must observe the resolved level")
}

func TestResolveLeavesEnvironmentWhenNoLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")
	environ := Environment{DataDir: t.TempDir(), LogLevel: "loud"}

	resolved, err := Resolve(context.Background(), parseArgs(t), environ)
	require.NoError(t, err)

	assert.Empty(t, resolved.LogLevel)
	assert.Equal(t, "loud", os.Getenv(EnvLogLevel),
		"no resolved level means no rewrite")
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv(EnvIPCHook, "/tmp/hook.sock")
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvDataDir, "/srv/workbench")

	environ, err := LoadEnvironment()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/hook.sock", environ.IPCHook)
	assert.Equal(t, "info", environ.LogLevel)
	assert.Equal(t, "/srv/workbench", environ.DataDir)
}

func TestBaseDataDirFallsBackToHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	base, err := BaseDataDir(Environment{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".workbench"), base)
}
