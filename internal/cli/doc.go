// Package cli parses command-line arguments into an app.Config and owns the
// program's exit-code conventions.
package cli
