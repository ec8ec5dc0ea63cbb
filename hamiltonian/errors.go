// Package hamiltonian sentinel errors.
// All constructors return these sentinels and callers match them via
// errors.Is. No function in this package panics on user input.
package hamiltonian

import "errors"

// Sentinel errors for grid and operator construction.
var (
	// ErrGridSize indicates a non-positive grid size was requested.
	ErrGridSize = errors.New("hamiltonian: grid size must be >= 1")
)
