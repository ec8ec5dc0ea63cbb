// Package spectrum sentinel errors.
// Solve returns these sentinels (possibly wrapped with operation
// context) and callers match them via errors.Is.
package spectrum

import "errors"

// Sentinel errors for eigensolver operations.
var (
	// ErrEigenCount indicates a requested eigenpair count outside
	// [0, N²]. Out-of-range requests are rejected, never clamped.
	ErrEigenCount = errors.New("spectrum: eigenpair count out of range")

	// ErrDecomposeFailed indicates the delegated eigendecomposition did
	// not converge or returned a malformed result.
	ErrDecomposeFailed = errors.New("spectrum: eigendecomposition failed")
)
