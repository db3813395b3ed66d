// Package ui provides terminal output formatting for workbench.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information
//
// All output goes to ui.Out (defaults to os.Stderr) so stdout stays
// clean for the service the CLI fronts. Tests can redirect ui.Out.
//
// Example usage:
//
//	ui.Info("Forwarding to running instance")
//	ui.Fail("Error parsing arguments: %v", err)
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
