// Package hamiltonian discretizes the 2D quantum Hamiltonian operator
// -∇² + V on a uniform grid by finite differences.
//
// 🚀 What does it do?
//
//	The continuous eigenproblem  (-∇² + V)ψ = Eψ  on the unit square is
//	approximated on an N×N grid of points with spacing dx = 1/N. The
//	Laplacian becomes the classic five-point stencil, so the operator
//	becomes a dense real symmetric N²×N² matrix:
//	  • diagonal entries  -4/dx² + V(i,j)
//	  • +1/dx² at each of the four in-bounds axis neighbors
//	  • open boundary — points outside the grid contribute nothing
//
// ✨ Key pieces:
//   - Grid       — immutable N×N grid with row-major index mapping
//   - Potential  — the field V(i,j): Well, Harmonic, or zero fallback
//   - Build      — assembles the operator as a gonum *mat.SymDense
//
// ⚙️ Usage:
//
//	g, err := hamiltonian.NewGrid(20)
//	if err != nil {
//	  // handle ErrGridSize
//	}
//	h := hamiltonian.Build(g, hamiltonian.Harmonic)
//
// Performance:
//
//   - Time:   O(N²) grid points, O(N⁴) matrix entries to allocate
//   - Memory: O(N⁴)
//
// The matrix is symmetric by construction (each neighbor pair is set
// identically in both directions) and is never post-symmetrized.
package hamiltonian
