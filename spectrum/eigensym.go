package spectrum

import "gonum.org/v1/gonum/mat"

// EigenSym is the default Decomposer, backed by gonum's mat.EigenSym
// (Householder tridiagonalization followed by implicit QL/QR). It
// returns the full real spectrum of the input with orthonormal
// eigenvector columns, in gonum's native (already ascending) order —
// Solve still re-sorts, per its contract.
type EigenSym struct{}

// Decompose factorizes h and returns its eigenvalues and eigenvector
// columns. Returns ErrDecomposeFailed if the factorization does not
// converge.
// Complexity: O(n³) time, O(n²) memory for an n×n input.
func (EigenSym) Decompose(h *mat.SymDense) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(h, true); !ok {
		return nil, nil, ErrDecomposeFailed
	}

	var vectors mat.Dense
	es.VectorsTo(&vectors)

	return es.Values(nil), &vectors, nil
}
