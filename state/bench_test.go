package state_test

import (
	"testing"

	"github.com/nxncube/nxncube/moves"
	"github.com/nxncube/nxncube/schemes"
	"github.com/nxncube/nxncube/state"
)

// benchmarkApply applies a precomputed face-turn permutation to a
// solved n-cube.
func benchmarkApply(b *testing.B, n int) {
	cube, err := state.Solved(n, schemes.Western)
	if err != nil {
		b.Fatalf("Solved failed: %v", err)
	}
	p, err := moves.U.Perm(n)
	if err != nil {
		b.Fatalf("Perm failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = cube.Apply(p); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkCube_Apply_N3 benchmarks permutation application over 54 tiles.
func BenchmarkCube_Apply_N3(b *testing.B) { benchmarkApply(b, 3) }

// BenchmarkCube_Apply_N20 benchmarks permutation application over 2400 tiles.
func BenchmarkCube_Apply_N20(b *testing.B) { benchmarkApply(b, 20) }

// BenchmarkCube_IsSolvedUpToRotation benchmarks the 24-orientation
// solvedness scan on a 3-cube.
func BenchmarkCube_IsSolvedUpToRotation(b *testing.B) {
	cube, err := state.Solved(3, schemes.Western)
	if err != nil {
		b.Fatalf("Solved failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !cube.IsSolvedUpToRotationIn(schemes.Western) {
			b.Fatal("solved cube reported unsolved")
		}
	}
}
