// Package config resolves the final configuration of an invocation.
//
// The parser deliberately never fills defaults; this package takes its
// output plus a one-shot environment snapshot and produces a Resolved
// value with guaranteed data directories and a settled log level. It
// owns the two environment side effects of startup: rewriting
// WORKBENCH_LOG_LEVEL with the final level and adjusting the global
// logger. Invalid environment values never raise; they fall through
// the precedence chain.
package config
