package tiles

// Operation is anything convertible to a total tile permutation for a
// given cube dimension: permutations themselves, whole-cube rotations,
// and every move family. The set of operation kinds is closed; this
// interface is the single capability they share.
type Operation interface {
	// Perm converts the operation to its tile permutation for an
	// n×n×n cube, validating any dimension-dependent parameters.
	Perm(n int) (*TilePerm, error)
}

// Compose converts each operation for dimension n and folds them
// left-to-right into a single permutation: the first operation is
// applied first, matching cubing notation. With no operations it
// returns the identity.
func Compose(n int, ops ...Operation) (*TilePerm, error) {
	out, err := Identity(n)
	if err != nil {
		return nil, err
	}

	for _, op := range ops {
		p, err := op.Perm(n)
		if err != nil {
			return nil, err
		}
		if out, err = out.Compose(p); err != nil {
			return nil, err
		}
	}

	return out, nil
}
