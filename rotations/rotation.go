package rotations

import (
	"strings"

	"github.com/nxncube/nxncube/geometry"
)

// Rotation is one of the 24 rotational symmetries of the cube, stored
// as a permutation of the four main space diagonals: element d of the
// array is the destination of diagonal d. Rotation is a comparable
// value type; the zero value is not meaningful; use ID.
type Rotation [geometry.NumDiags]geometry.Diag

// ID is the identity rotation.
var ID = Rotation{geometry.UFR, geometry.UFL, geometry.UBR, geometry.UBL}

// Quarter, half and three-quarter turns about the Right-face axis.
// X carries Front to Up (and Up to Back).
var (
	X  = Rotation{geometry.UBR, geometry.UBL, geometry.UFL, geometry.UFR}
	X2 = Rotation{geometry.UFL, geometry.UFR, geometry.UBL, geometry.UBR}
	X3 = Rotation{geometry.UBL, geometry.UBR, geometry.UFR, geometry.UFL}
)

// Quarter, half and three-quarter turns about the Up-face axis.
// Y carries Right to Front (and Front to Left).
var (
	Y  = Rotation{geometry.UFL, geometry.UBL, geometry.UFR, geometry.UBR}
	Y2 = Rotation{geometry.UBL, geometry.UBR, geometry.UFL, geometry.UFR}
	Y3 = Rotation{geometry.UBR, geometry.UFR, geometry.UBL, geometry.UFL}
)

// Quarter, half and three-quarter turns about the Front-face axis.
// Z carries Up to Right (and Left to Up).
var (
	Z  = Rotation{geometry.UBL, geometry.UFR, geometry.UFL, geometry.UBR}
	Z2 = Rotation{geometry.UBR, geometry.UBL, geometry.UFR, geometry.UFL}
	Z3 = Rotation{geometry.UFL, geometry.UBR, geometry.UBL, geometry.UFR}
)

// Compose returns the rotation applying r first, then s, left-to-right
// as in cubing notation.
func (r Rotation) Compose(s Rotation) Rotation {
	var out Rotation
	for d := range out {
		out[d] = s[r[d]]
	}

	return out
}

// Inverse returns the rotation undoing r:
// r.Compose(r.Inverse()) == ID == r.Inverse().Compose(r).
func (r Rotation) Inverse() Rotation {
	var out Rotation
	for d, dst := range r {
		out[dst] = geometry.Diag(d)
	}

	return out
}

// At returns the destination of one main diagonal under r.
func (r Rotation) At(d geometry.Diag) geometry.Diag {
	return r[d]
}

// All returns the full octahedral group, derived by closing the
// generator set {X, Y, Z} under composition starting from ID. The
// result always has exactly 24 distinct elements, in a deterministic
// breadth-first order beginning with ID.
func All() []Rotation {
	generators := []Rotation{X, Y, Z}
	seen := map[Rotation]bool{ID: true}
	out := []Rotation{ID}
	for i := 0; i < len(out); i++ {
		for _, g := range generators {
			next := out[i].Compose(g)
			if !seen[next] {
				seen[next] = true
				out = append(out, next)
			}
		}
	}

	return out
}

// String renders the rotation as its diagonal cycle images, e.g.
// "(UFR→UBR UFL→UBL UBR→UFL UBL→UFR)".
func (r Rotation) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for d, dst := range r {
		if d > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(geometry.Diag(d).String())
		b.WriteString("→")
		b.WriteString(dst.String())
	}
	b.WriteByte(')')

	return b.String()
}
