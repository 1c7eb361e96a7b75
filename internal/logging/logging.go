// Package logging holds the package-level zerolog.Logger used by the
// dictionary store. It defaults to a no-op logger so
// the module stays silent until a host process opts in.
package logging

import "github.com/rs/zerolog"

var L zerolog.Logger = zerolog.Nop()

// Set replaces the shared logger. Callers normally reach this through
// jamen.SetLogger rather than importing this internal package directly.
func Set(l zerolog.Logger) {
	L = l
}
