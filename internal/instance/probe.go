package instance

import (
	"context"
	"net"
	"strings"
	"time"
)

// probeTimeout bounds the liveness connect so a stale hand-off file
// can never hang the CLI.
const probeTimeout = 2 * time.Second

// probeEndpoint attempts a connect-then-close against the endpoint
// named by the hand-off file. No payload is exchanged; a successful
// connect is the only signal. Refused, timed out, and cancelled all
// read as "not alive".
func probeEndpoint(ctx context.Context, endpoint string) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, endpointNetwork(endpoint), endpoint)
	if err != nil {
		return false
	}

	_ = conn.Close()
	return true
}

// endpointNetwork infers the dial network from the endpoint shape: a
// path means a unix socket, anything else is treated as host:port.
func endpointNetwork(endpoint string) string {
	if strings.ContainsAny(endpoint, `/\`) {
		return "unix"
	}
	return "tcp"
}
