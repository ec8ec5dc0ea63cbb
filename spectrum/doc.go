// Package spectrum computes the lowest eigenpairs of a discretized 2D
// Hamiltonian, delegating the eigendecomposition itself to an external
// dense symmetric routine.
//
// 🚀 What does it do?
//
//	Solve builds the operator via the hamiltonian package, hands it to
//	a Decomposer, then imposes its own ordering:
//	  • every eigenpair is re-sorted ascending by eigenvalue with a
//	    stable sort — the delegate's native order is never trusted
//	  • ties keep the delegate's relative order (degenerate eigenvalues
//	    of a discretized Laplacian are common)
//	  • the sorted sequence is optionally truncated to the first NEigs
//	    pairs
//
// ✨ Key pieces:
//   - Decomposer — capability interface for symmetric eigendecomposition
//   - EigenSym   — the default backend, gonum's mat.EigenSym
//   - Eigenpair  — (eigenvalue, eigenvector) in ascending order
//
// ⚙️ Usage:
//
//	opts := spectrum.DefaultOptions()
//	opts.NEigs = 5
//	pairs, err := spectrum.SolveSize(20, hamiltonian.Harmonic, opts)
//	if err != nil {
//	  // handle ErrEigenCount, ErrDecomposeFailed, hamiltonian.ErrGridSize
//	}
//
// Eigenvectors carry whatever normalization the decomposer returns
// (orthonormal columns for the gonum backend); Solve never
// renormalizes. Requesting more pairs than the spectrum holds is
// rejected with ErrEigenCount rather than silently clamped.
//
// Performance: the full spectrum of a dense N²×N² matrix is computed,
// so time grows as O(N⁶); keep grids modest.
package spectrum
