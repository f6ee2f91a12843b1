package schemes_test

import (
	"testing"

	"github.com/nxncube/nxncube/rotations"
	"github.com/nxncube/nxncube/schemes"
)

// BenchmarkScheme_Rotated reorients the Western scheme through all 24
// rotations, the inner loop of solved-up-to-rotation checks.
func BenchmarkScheme_Rotated(b *testing.B) {
	all := rotations.All()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range all {
			_ = schemes.Western.Rotated(r)
		}
	}
}
