// Package cli translates command-line arguments into a validated app.Config
// and owns the process exit-code contract.
package cli
