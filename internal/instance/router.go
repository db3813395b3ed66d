package instance

import (
	"context"
	"log/slog"

	"github.com/workbench-dev/workbench/internal/config"
)

// DecisionKind enumerates the two routing outcomes.
type DecisionKind int

const (
	// Standalone means this invocation proceeds to start its own
	// instance.
	Standalone DecisionKind = iota
	// Forward means the invocation is handed to an already-running
	// instance reachable at Decision.Endpoint.
	Forward
)

func (k DecisionKind) String() string {
	if k == Forward {
		return "forward"
	}
	return "standalone"
}

// Decision is the routing outcome for one invocation. It is computed
// fresh each time and never persisted.
type Decision struct {
	Kind     DecisionKind
	Endpoint string
}

// Router decides whether an invocation joins a running instance. The
// zero value is not usable; construct with NewRouter.
type Router struct {
	env config.Environment

	// HandoffFile is the path probed for a published endpoint.
	// Overridable for tests; defaults to HandoffPath().
	HandoffFile string

	probe func(context.Context, string) bool
}

// NewRouter returns a Router reading the well-known hand-off file.
func NewRouter(environ config.Environment) *Router {
	return &Router{
		env:         environ,
		HandoffFile: HandoffPath(),
		probe:       probeEndpoint,
	}
}

// Route inspects environment, flags, and the hand-off file, in that
// order, and picks between forwarding and standalone startup. Every
// degraded condition (missing file, dead listener, timed-out probe)
// is a normal Standalone outcome, never an error: routing runs
// unattended at every startup and must not block the tool.
func (r *Router) Route(ctx context.Context, cfg *config.Resolved) Decision {
	// Inside a running instance's CLI hook the environment names the
	// endpoint directly and overrides every flag.
	if r.env.IPCHook != "" {
		slog.Debug("routing via CLI hook", "endpoint", r.env.IPCHook)
		return Decision{Kind: Forward, Endpoint: r.env.IPCHook}
	}

	// An explicit window request trusts the hand-off file as-is: no
	// liveness probe, and a port flag does not opt out.
	if cfg.Args.ReuseWindow() || cfg.Args.NewWindow() {
		endpoint, ok := readHandoff(r.HandoffFile)
		if !ok {
			return Decision{Kind: Standalone}
		}
		return Decision{Kind: Forward, Endpoint: endpoint}
	}

	// An explicit port always starts a fresh, independently
	// addressable instance.
	if _, ok := cfg.Args.Port(); ok {
		return Decision{Kind: Standalone}
	}

	// Nothing to hand off.
	if len(cfg.Args.Positional) == 0 {
		return Decision{Kind: Standalone}
	}

	endpoint, ok := readHandoff(r.HandoffFile)
	if !ok {
		return Decision{Kind: Standalone}
	}

	if !r.probe(ctx, endpoint) {
		slog.Debug("stale hand-off endpoint", "endpoint", endpoint)
		return Decision{Kind: Standalone}
	}

	return Decision{Kind: Forward, Endpoint: endpoint}
}
