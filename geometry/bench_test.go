package geometry_test

import (
	"testing"

	"github.com/nxncube/nxncube/geometry"
)

// BenchmarkAdjacent measures the table lookup for all 24 (face, side)
// pairs, the inner loop of every ring construction.
func BenchmarkAdjacent(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, f := range geometry.Faces {
			for _, s := range geometry.Sides {
				_ = geometry.Adjacent(f, s)
			}
		}
	}
}

// benchmarkRotateIndices rotates every cell of an n×n grid by a full
// cycle of angles.
func benchmarkRotateIndices(b *testing.B, n int) {
	angles := [...]geometry.Angle{geometry.Zero, geometry.CW, geometry.Half, geometry.CCW}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				for _, a := range angles {
					_, _ = a.RotateIndices(n, row, col)
				}
			}
		}
	}
}

// BenchmarkAngle_RotateIndices_N3 benchmarks grid rotation on a 3×3 face.
func BenchmarkAngle_RotateIndices_N3(b *testing.B) {
	benchmarkRotateIndices(b, 3)
}

// BenchmarkAngle_RotateIndices_N50 benchmarks grid rotation on a 50×50 face.
func BenchmarkAngle_RotateIndices_N50(b *testing.B) {
	benchmarkRotateIndices(b, 50)
}
