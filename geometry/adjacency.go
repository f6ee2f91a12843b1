package geometry

// This file derives the face-adjacency table and the per-face corner
// diagonal cycles from a fixed reference embedding of the six faces in
// 3-D space. Axes: x grows toward Right, y toward Up, z toward Front.

// vec3 is a unit-ish integer vector; components are always -1, 0 or 1.
type vec3 [3]int

func (v vec3) neg() vec3 { return vec3{-v[0], -v[1], -v[2]} }

func (v vec3) add(w vec3) vec3 { return vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// frame is a face's local coordinate frame: the outward face centre,
// the direction of growing row index, and the direction of growing
// column index. For every face drow × dcol equals the outward normal,
// so all six frames share the same chirality; the adjacency table's
// rotational consistency rests on that.
type frame struct {
	center vec3
	drow   vec3
	dcol   vec3
}

// frames fixes the reference orientation of the net (U above F, L left
// of F, B below D), indexed by Face.
var frames = [NumFaces]frame{
	Up:    {center: vec3{0, 1, 0}, drow: vec3{0, 0, 1}, dcol: vec3{1, 0, 0}},
	Down:  {center: vec3{0, -1, 0}, drow: vec3{0, 0, -1}, dcol: vec3{1, 0, 0}},
	Left:  {center: vec3{-1, 0, 0}, drow: vec3{0, -1, 0}, dcol: vec3{0, 0, 1}},
	Right: {center: vec3{1, 0, 0}, drow: vec3{0, -1, 0}, dcol: vec3{0, 0, -1}},
	Front: {center: vec3{0, 0, 1}, drow: vec3{0, -1, 0}, dcol: vec3{1, 0, 0}},
	Back:  {center: vec3{0, 0, -1}, drow: vec3{0, 1, 0}, dcol: vec3{1, 0, 0}},
}

// AdjacentFace records, for one side of a face, the bordering face and
// the side of that face lying along the shared edge. The pair is the
// alignment descriptor between the two local frames: positions along
// the edge are exchanged through PosAtDepth.
type AdjacentFace struct {
	// Face is the bordering face.
	Face Face
	// Side is the bordering face's own side along the shared edge.
	Side Side
}

// adjacencies and cornerDiags are computed once in init and read-only
// thereafter.
var (
	adjacencies [NumFaces][NumSides]AdjacentFace
	cornerDiags [NumFaces][NumDiags]Diag
)

// Adjacent returns the bordering face and frame alignment for side s
// of face f. The relation is symmetric: if Adjacent(f, s) is (g, t)
// then Adjacent(g, t) is (f, s).
func Adjacent(f Face, s Side) AdjacentFace {
	return adjacencies[f][s]
}

// PosAtDepth maps a position along the shared edge into the local grid
// of a.Face, offset inward by depth rows/columns from a.Side. index
// runs over [0, n) in the direction of a clockwise traversal of
// a.Face's boundary; because all face frames share one chirality, the
// same index on consecutive sides of a ring denotes tiles carried onto
// each other by a quarter turn. index and depth must lie in [0, n).
func (a AdjacentFace) PosAtDepth(n, index, depth int) (row, col int) {
	switch a.Side {
	case North:
		return depth, index
	case East:
		return index, n - 1 - depth
	case South:
		return n - 1 - depth, n - 1 - index
	case West:
		return n - 1 - index, depth
	default:
		panic("geometry: invalid Side")
	}
}

// sideDir returns the outward direction from the centre of f toward
// its side s, in world coordinates.
func sideDir(f Face, s Side) vec3 {
	fr := frames[f]
	switch s {
	case North:
		return fr.drow.neg()
	case East:
		return fr.dcol
	case South:
		return fr.drow
	case West:
		return fr.dcol.neg()
	default:
		panic("geometry: invalid Side")
	}
}

// faceAt returns the face whose centre is v.
func faceAt(v vec3) Face {
	for _, f := range Faces {
		if frames[f].center == v {
			return f
		}
	}
	panic("geometry: no face at direction")
}

// diagAt returns the main diagonal through the corner point v, whose
// components are all ±1. Diagonals are named by their y = +1 endpoint.
func diagAt(v vec3) Diag {
	if v[1] < 0 {
		v = v.neg()
	}
	switch {
	case v[0] > 0 && v[2] > 0:
		return UFR
	case v[0] < 0 && v[2] > 0:
		return UFL
	case v[0] > 0 && v[2] < 0:
		return UBR
	default:
		return UBL
	}
}

func init() {
	// Corner diagonals: the clockwise corner cycle (0,0), (0,n-1),
	// (n-1,n-1), (n-1,0) expressed as offsets (-drow-dcol), (-drow+dcol),
	// (+drow+dcol), (+drow-dcol) from the face centre.
	for _, f := range Faces {
		fr := frames[f]
		corners := [NumDiags]vec3{
			fr.center.add(fr.drow.neg()).add(fr.dcol.neg()),
			fr.center.add(fr.drow.neg()).add(fr.dcol),
			fr.center.add(fr.drow).add(fr.dcol),
			fr.center.add(fr.drow).add(fr.dcol.neg()),
		}
		for i, c := range corners {
			cornerDiags[f][i] = diagAt(c)
		}
	}

	// Adjacency: the neighbour across side s is the face centred in
	// that direction; its matching side is the one pointing back at f.
	for _, f := range Faces {
		for _, s := range Sides {
			g := faceAt(sideDir(f, s))
			var back Side
			found := false
			for _, t := range Sides {
				if sideDir(g, t) == frames[f].center {
					back = t
					found = true
					break
				}
			}
			if !found {
				panic("geometry: adjacency derivation failed")
			}
			adjacencies[f][s] = AdjacentFace{Face: g, Side: back}
		}
	}

	// Symmetry check: A borders B implies B borders A on the matching
	// side. Any violation means the frames table is inconsistent.
	for _, f := range Faces {
		for _, s := range Sides {
			a := adjacencies[f][s]
			b := adjacencies[a.Face][a.Side]
			if b.Face != f || b.Side != s {
				panic("geometry: adjacency table is not symmetric")
			}
		}
	}
}
