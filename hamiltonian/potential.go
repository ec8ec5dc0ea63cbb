package hamiltonian

// harmonicStrength is the quadratic coefficient k in V = k·(x² + y²).
const harmonicStrength = 4.0

// Potential selects the field V(i,j) added to the kinetic term.
//
//   - Well     — V = 0 everywhere. No hard wall is enforced; the
//     stencil truncation at the grid edge is the only confinement.
//   - Harmonic — V = 4·(x² + y²) with x = (i − N/2)·dx and
//     y = (j − N/2)·dx, so the grid center is the potential minimum.
//
// Any other tag evaluates to the zero potential, identical to Well.
// This permissive fallback is deliberate: the builder never rejects a
// potential kind. Callers that want strictness should gate on Known
// before building (the bundled CLI does).
type Potential string

const (
	// Well is the infinite square well: zero potential on the grid.
	Well Potential = "well"
	// Harmonic is the 2D harmonic oscillator centered on the grid.
	Harmonic Potential = "harmonic"
)

// Known reports whether p is one of the defined potential kinds.
// Unknown kinds still evaluate (to zero); Known lets strict callers
// reject them up front.
// Complexity: O(1).
func (p Potential) Known() bool {
	return p == Well || p == Harmonic
}

// At evaluates V at grid point (i,j) of g.
// Pure function of its inputs; unknown kinds return 0.
// Complexity: O(1).
func (p Potential) At(g Grid, i, j int) float64 {
	switch p {
	case Harmonic:
		x := (float64(i) - float64(g.N)/2) * g.Dx
		y := (float64(j) - float64(g.N)/2) * g.Dx

		return harmonicStrength * (x*x + y*y)
	default:
		// Well and every unknown kind share the zero potential.
		return 0
	}
}
