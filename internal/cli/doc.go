// Package cli turns command-line arguments into an app.Config. Usage output
// and invalid flags are reported through a clean-exit flag or an ExitError
// carrying the process exit code.
package cli
