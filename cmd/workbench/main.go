package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/workbench-dev/workbench/internal/cli"
	"github.com/workbench-dev/workbench/internal/config"
	"github.com/workbench-dev/workbench/internal/instance"
	"github.com/workbench-dev/workbench/internal/logging"
	"github.com/workbench-dev/workbench/internal/ui"
)

const version = "1.6.0"

// serverBinary is the long-running service this CLI fronts. Starting
// it, opening files in it, and managing its extensions all happen on
// the other side of this exec boundary.
const serverBinary = "workbench-server"

func main() {
	// Parse arguments
	args, err := cli.Parse(os.Args[1:])
	if err != nil {
		ui.Fail("Error parsing arguments: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("workbench --help"))
		os.Exit(1)
	}

	if args.Help() {
		showHelp()
		return
	}

	if args.Version() {
		fmt.Printf("workbench %s\n", version)
		return
	}

	environ, err := config.LoadEnvironment()
	if err != nil {
		ui.Fail("Failed to read environment: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	resolved, err := config.Resolve(ctx, args, environ)
	if err != nil {
		ui.Fail("Failed to resolve configuration: %v", err)
		os.Exit(1)
	}

	logging.Init(logging.Options{
		File: filepath.Join(resolved.UserDataDir, "logs", "workbench.log"),
	})
	logger := slog.With("invocation", uuid.NewString())

	router := instance.NewRouter(environ)
	decision := router.Route(ctx, resolved)
	logger.Debug("routing decided",
		"decision", decision.Kind.String(),
		"endpoint", decision.Endpoint,
		"positional", len(args.Positional))

	switch decision.Kind {
	case instance.Forward:
		forwardToInstance(decision.Endpoint, args.Positional)
	default:
		startStandalone(resolved)
	}
}

// forwardToInstance hands the positional arguments to the running
// instance at endpoint and exits with the collaborator's exit code.
func forwardToInstance(endpoint string, files []string) {
	serverArgs := append([]string{"open", "--ipc", endpoint}, files...)
	runServer(serverArgs)
}

// startStandalone starts a fresh instance with the fully resolved
// configuration spelled out, so the service never re-derives defaults.
func startStandalone(resolved *config.Resolved) {
	serverArgs := append([]string{"serve"}, serveArgs(resolved)...)
	runServer(serverArgs)
}

// serveArgs rebuilds the argument vector for the service from the
// resolved configuration. Window-routing flags are intentionally not
// carried over; they were consumed by the routing decision.
func serveArgs(resolved *config.Resolved) []string {
	args := resolved.Args

	out := []string{
		"--user-data-dir", resolved.UserDataDir,
		"--extensions-dir", resolved.ExtensionsDir,
	}
	if resolved.LogLevel != "" {
		out = append(out, "--log", resolved.LogLevel)
	}

	if port, ok := args.Port(); ok {
		out = append(out, "--port", strconv.Itoa(port))
	}
	for _, name := range []string{"host", "bind-addr", "socket", "auth", "cert-key", "locale"} {
		if v, ok := args.String(name); ok {
			out = append(out, "--"+name, v)
		}
	}
	// A bare --cert asks the service to generate a self-signed
	// certificate; with a value it names one on disk.
	if args.Empty("cert") {
		out = append(out, "--cert")
	} else if v, ok := args.String("cert"); ok {
		out = append(out, "--cert", v)
	}
	for _, name := range []string{"open", "force", "list-extensions", "show-versions",
		"ignore-last-opened", "disable-telemetry", "disable-update-check"} {
		if args.Bool(name) {
			out = append(out, "--"+name)
		}
	}
	for _, name := range []string{"install-extension", "uninstall-extension", "enable", "proxy-domain"} {
		for _, v := range args.Strings(name) {
			out = append(out, "--"+name, v)
		}
	}

	return append(out, args.Positional...)
}

// runServer execs the service with inherited stdio and propagates its
// exit code, mirroring how the tool behaves when invoked directly.
func runServer(serverArgs []string) {
	cmd := exec.Command(serverBinary, serverArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		ui.Fail("Failed to run %s: %v", serverBinary, err)
		os.Exit(1)
	}
}

func showHelp() {
	help := `workbench - command-line front-end for the workbench service

USAGE:
    workbench [OPTIONS] [PATHS...]

    With no running instance, starts one and opens PATHS in it.
    With a running instance, forwards PATHS to it instead.

WINDOW OPTIONS:
    -n, --new-window       Open paths in a new window of the running instance
    -r, --reuse-window     Open paths in the last active window
    --ignore-last-opened   Do not restore the previous session

SERVER OPTIONS:
    --host HOST            Address to listen on
    --port PORT            Port to listen on (always starts a fresh instance)
    --bind-addr ADDR       Combined host:port form
    --socket PATH          Listen on a unix socket instead
    --auth KIND            Authentication: password or none
    --cert [PATH]          TLS certificate; bare flag generates self-signed
    --cert-key PATH        TLS certificate key

EXTENSION OPTIONS:
    --extensions-dir DIR       Override the extensions directory
    --install-extension ID     Install an extension (repeatable)
    --uninstall-extension ID   Uninstall an extension (repeatable)
    --enable FEATURE           Enable a proposed feature (repeatable)
    --list-extensions          List installed extensions
    --show-versions            Include versions in the listing
    -f, --force                Skip prompts during extension operations

GENERAL OPTIONS:
    --user-data-dir DIR    Override the user data directory
    --log LEVEL            Log level: trace, debug, info, warn, error
    --verbose              Maximum verbosity (same as --log trace)
    --locale LOCALE        Display language
    --open                 Open the address in a browser after start
    --proxy-domain DOMAIN  Proxy requests for DOMAIN (repeatable)
    --disable-telemetry    Disable usage reporting
    --disable-update-check Disable the update check
    -h, --help             Show this help message
    -v, --version          Show version information

EXAMPLES:
    # Start (or reuse) an instance and open the current directory
    workbench .

    # Force a new independent instance on a fixed port
    workbench --port 8081 .

    # Open a file in the already-running instance's last window
    workbench -r notes.md

ENVIRONMENT VARIABLES:
    WORKBENCH_IPC_HOOK_CLI  Set inside a running instance; forwards unconditionally
    WORKBENCH_LOG_LEVEL     Default log level when no flag is given
    WORKBENCH_DATA_DIR      Base directory for data and extensions
`
	fmt.Print(help)
}
