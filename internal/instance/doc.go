// Package instance decides, at startup, whether an invocation should
// be forwarded to an already-running workbench instance or proceed
// standalone.
//
// The package provides three pieces:
//
// 1. Hand-off file (handoff.go)
//    - Fixed-path file in the system temp directory
//    - Written by the running service, read-only here
//    - Missing or empty reads as "no instance"
//
// 2. Liveness probe (probe.go)
//    - Bounded connect-then-close, no payload
//    - Unix socket or TCP inferred from the endpoint shape
//    - Timeout and refusal are equivalent outcomes
//
// 3. Router (router.go)
//    - Environment hook overrides everything
//    - reuse/new-window flags trust the hand-off file without probing
//    - An explicit --port or an empty file list means standalone
//
// Routing never returns an error; "no existing instance" is a normal
// result.
package instance
