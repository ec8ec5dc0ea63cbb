// Package quantgrid approximates stationary states of a quantum particle
// in a two-dimensional potential by finite differences.
//
// 🚀 What is quantgrid?
//
//	A small numerical library that discretizes the Hamiltonian operator
//	-∇² + V on a uniform N×N grid and computes its lowest eigenpairs:
//	  • Five-point-stencil assembly of the dense symmetric operator
//	  • Built-in potentials: infinite well and 2D harmonic oscillator
//	  • Eigendecomposition delegated to gonum, sorted ascending
//	  • Pluggable decomposer interface for alternative backends
//
// ✨ Why choose quantgrid?
//
//   - Minimal API — build a grid, pick a potential, call Solve
//   - Deterministic — pure construction, stable eigenvalue ordering
//   - Honest errors — sentinel errors, errors.Is-friendly, no panics
//
// Everything is organized under two subpackages and a CLI:
//
//	hamiltonian/  — Grid model, potential fields, operator assembly
//	spectrum/     — eigendecomposition wrapper: sort, truncate, report
//	cmd/quantgrid — command-line front end
//
// Quick sketch:
//
//	g, err := hamiltonian.NewGrid(20)
//	if err != nil { ... }
//	opts := spectrum.DefaultOptions()
//	opts.NEigs = 5
//	pairs, err := spectrum.Solve(g, hamiltonian.Harmonic, opts)
//
// The operator is dense at O(N⁴) entries, so memory and time grow
// rapidly with N; bounding the grid size is left to the caller.
//
//	go get github.com/quantgrid/quantgrid
package quantgrid
