// Package spectrum types and options.
package spectrum

import "gonum.org/v1/gonum/mat"

// Eigenpair is one (eigenvalue, eigenvector) pair of the discretized
// Hamiltonian, satisfying H·v = λ·v up to the decomposer's accuracy.
// Vector has length N² and keeps the normalization the decomposer
// produced (unit 2-norm for the gonum backend).
type Eigenpair struct {
	// Value is the eigenvalue λ.
	Value float64
	// Vector is the eigenvector, indexed row-major over the grid.
	Vector []float64
}

// Decomposer is the symmetric eigendecomposition capability consumed
// by Solve. Implementations must return all n real eigenvalues of the
// n×n input together with an n×n matrix whose columns are the matching
// eigenvectors. No ordering of the results is assumed; Solve sorts.
type Decomposer interface {
	Decompose(h *mat.SymDense) (values []float64, vectors *mat.Dense, err error)
}

// Options configures Solve.
//
// Fields:
//   - NEigs      — how many of the lowest eigenpairs to return.
//     Zero means the full spectrum; negative values and values above
//     N² are rejected with ErrEigenCount.
//   - Decomposer — the eigendecomposition backend. Nil selects the
//     default gonum-backed EigenSym.
//
// Example:
//
//	opts := spectrum.DefaultOptions()
//	opts.NEigs = 3
//	pairs, err := spectrum.Solve(g, hamiltonian.Well, opts)
type Options struct {
	NEigs      int
	Decomposer Decomposer
}

// DefaultOptions returns Options with default settings:
// NEigs=0 (full spectrum) and the gonum EigenSym backend.
func DefaultOptions() Options {
	return Options{
		NEigs:      0,
		Decomposer: EigenSym{},
	}
}
