package spectrum_test

import (
	"testing"

	"github.com/quantgrid/quantgrid/hamiltonian"
	"github.com/quantgrid/quantgrid/spectrum"
)

// benchmarkSolve runs a full build-and-decompose cycle on an n×n grid.
// The decomposition dominates: O(n⁶) for the dense n²×n² operator.
func benchmarkSolve(b *testing.B, n int, p hamiltonian.Potential) {
	g, err := hamiltonian.NewGrid(n)
	if err != nil {
		b.Fatalf("NewGrid failed: %v", err)
	}
	opts := spectrum.DefaultOptions()
	opts.NEigs = 1

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = spectrum.Solve(g, p, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_WellSmall solves a 4×4 well grid (16×16 operator).
func BenchmarkSolve_WellSmall(b *testing.B) {
	benchmarkSolve(b, 4, hamiltonian.Well)
}

// BenchmarkSolve_WellMedium solves an 8×8 well grid (64×64 operator).
func BenchmarkSolve_WellMedium(b *testing.B) {
	benchmarkSolve(b, 8, hamiltonian.Well)
}

// BenchmarkSolve_HarmonicMedium solves an 8×8 harmonic grid.
func BenchmarkSolve_HarmonicMedium(b *testing.B) {
	benchmarkSolve(b, 8, hamiltonian.Harmonic)
}
