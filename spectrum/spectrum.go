package spectrum

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/quantgrid/quantgrid/hamiltonian"
)

// Solve computes the lowest eigenpairs of the discretized Hamiltonian
// -∇² + V over g. Returns (pairs, error).
//
// Algorithm outline:
//  1. Validate opts.NEigs against [0, N²]; 0 requests the full spectrum.
//  2. Assemble H via hamiltonian.Build.
//  3. Delegate to opts.Decomposer (EigenSym when nil) for all N²
//     eigenvalues and eigenvector columns.
//  4. Sort the pairs ascending by eigenvalue with a stable sort; the
//     delegate's native ordering is never assumed, and ties keep the
//     delegate's relative order.
//  5. Truncate to the first NEigs pairs when NEigs > 0.
//
// Eigenvectors are returned exactly as the decomposer produced them;
// Solve never renormalizes.
//
// Errors:
//   - ErrEigenCount      — NEigs < 0 or NEigs > N².
//   - ErrDecomposeFailed — the delegate failed or returned a result
//     whose shape does not match the input.
//
// Complexity: O(N⁶) decomposition dominates; sorting adds O(N² log N²).
func Solve(g hamiltonian.Grid, p hamiltonian.Potential, opts Options) ([]Eigenpair, error) {
	n := g.Points()
	if opts.NEigs < 0 || opts.NEigs > n {
		return nil, fmt.Errorf("Solve: n_eigs=%d with %d grid points: %w", opts.NEigs, n, ErrEigenCount)
	}
	dec := opts.Decomposer
	if dec == nil {
		dec = EigenSym{}
	}

	h := hamiltonian.Build(g, p)
	values, vectors, err := dec.Decompose(h)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err = validateDecomposition(n, values, vectors); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stable ascending order over an index permutation, so tied
	// eigenvalues keep the delegate's relative order.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return values[perm[a]] < values[perm[b]]
	})

	count := n
	if opts.NEigs > 0 {
		count = opts.NEigs
	}
	pairs := make([]Eigenpair, count)
	for k := 0; k < count; k++ {
		pairs[k] = Eigenpair{
			Value:  values[perm[k]],
			Vector: mat.Col(nil, perm[k], vectors),
		}
	}

	return pairs, nil
}

// SolveSize is a convenience wrapper that validates n via
// hamiltonian.NewGrid and solves in one call, mirroring Solve's
// contract. Returns hamiltonian.ErrGridSize for n < 1.
func SolveSize(n int, p hamiltonian.Potential, opts Options) ([]Eigenpair, error) {
	g, err := hamiltonian.NewGrid(n)
	if err != nil {
		return nil, err
	}

	return Solve(g, p, opts)
}

// validateDecomposition checks that a delegate honored the Decomposer
// contract for an n×n input: n eigenvalues and an n×n vector matrix.
// A malformed result is reported as ErrDecomposeFailed.
func validateDecomposition(n int, values []float64, vectors *mat.Dense) error {
	if len(values) != n {
		return fmt.Errorf("%d eigenvalues for order %d: %w", len(values), n, ErrDecomposeFailed)
	}
	if vectors == nil {
		return fmt.Errorf("nil eigenvector matrix: %w", ErrDecomposeFailed)
	}
	if r, c := vectors.Dims(); r != n || c != n {
		return fmt.Errorf("%dx%d eigenvector matrix for order %d: %w", r, c, n, ErrDecomposeFailed)
	}

	return nil
}
