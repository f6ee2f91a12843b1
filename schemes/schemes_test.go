package schemes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/rotations"
	"github.com/nxncube/nxncube/schemes"
)

func TestStandardSchemesAreProper(t *testing.T) {
	for name, s := range map[string]schemes.Scheme{
		"western": schemes.Western, "japanese": schemes.Japanese,
	} {
		t.Run(name, func(t *testing.T) {
			seen := make(map[schemes.Colour]geometry.Face, schemes.NumColours)
			for _, f := range geometry.Faces {
				c := s.Colour(f)
				_, dup := seen[c]
				assert.False(t, dup, "colour %v assigned twice", c)
				seen[c] = f
			}
			assert.Len(t, seen, schemes.NumColours)
		})
	}
}

func TestFaceOf(t *testing.T) {
	for _, f := range geometry.Faces {
		got, err := schemes.Western.FaceOf(schemes.Western.Colour(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	// A scheme missing a colour rejects it.
	allWhite := schemes.Scheme{}
	_, err := allWhite.FaceOf(schemes.Green)
	assert.ErrorIs(t, err, schemes.ErrColourNotInScheme)
}

func TestRotated(t *testing.T) {
	t.Run("identity changes nothing", func(t *testing.T) {
		assert.Equal(t, schemes.Western, schemes.Western.Rotated(rotations.ID))
	})

	t.Run("Y brings the Right colour to Front", func(t *testing.T) {
		got := schemes.Western.Rotated(rotations.Y)
		assert.Equal(t, schemes.Western.Right, got.Front)
		assert.Equal(t, schemes.Western.Front, got.Left)
		assert.Equal(t, schemes.Western.Up, got.Up)
		assert.Equal(t, schemes.Western.Down, got.Down)
	})

	t.Run("X brings the Front colour to Up", func(t *testing.T) {
		got := schemes.Western.Rotated(rotations.X)
		assert.Equal(t, schemes.Western.Front, got.Up)
		assert.Equal(t, schemes.Western.Up, got.Back)
		assert.Equal(t, schemes.Western.Left, got.Left)
	})

	t.Run("rotation then inverse restores", func(t *testing.T) {
		for _, r := range rotations.All() {
			assert.Equal(t, schemes.Western,
				schemes.Western.Rotated(r).Rotated(r.Inverse()))
		}
	})

	t.Run("composition chains", func(t *testing.T) {
		yx := rotations.Y.Compose(rotations.X)
		assert.Equal(t,
			schemes.Western.Rotated(rotations.Y).Rotated(rotations.X),
			schemes.Western.Rotated(yx))
	})
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "U:W D:Y L:O R:R F:G B:B", schemes.Western.String())
}
