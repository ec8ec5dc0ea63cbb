package hamiltonian

// neighborOffsets enumerates 4-directional connectivity: N, S, W, E.
// Every adjacency traversal uses this table to avoid branching.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a uniform N×N set of points covering the unit square.
// It is immutable once built: N is the number of points per side and
// Dx is the spacing 1/N. Points are linearized row-major, so the grid
// point (i,j) maps to index i*N + j, giving N² degrees of freedom.
type Grid struct {
	// N is the number of grid points per side.
	N int
	// Dx is the grid spacing, always 1/N.
	Dx float64
}

// NewGrid constructs a Grid with n points per side and spacing 1/n.
// Returns ErrGridSize if n < 1. No upper bound is imposed; the dense
// operator over the grid costs O(n⁴) memory, which is the caller's
// concern.
// Complexity: O(1).
func NewGrid(n int) (Grid, error) {
	if n < 1 {
		return Grid{}, ErrGridSize
	}

	return Grid{N: n, Dx: 1 / float64(n)}, nil
}

// Points returns the total number of grid points, N².
// Complexity: O(1).
func (g Grid) Points() int {
	return g.N * g.N
}

// Index maps (i,j) to a row-major linear index: i*N + j.
// Complexity: O(1).
func (g Grid) Index(i, j int) int {
	return i*g.N + j
}

// Coordinate converts a row-major linear index back to (i,j).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (i, j int) {
	return idx / g.N, idx % g.N
}

// InBounds reports whether (i,j) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.N && j >= 0 && j < g.N
}
