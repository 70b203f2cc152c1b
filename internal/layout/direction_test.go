package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverse(t *testing.T) {
	t.Run("maps vertical and horizontal onto each other", func(t *testing.T) {
		inv, err := Inverse(DirectionVertical)
		require.NoError(t, err)
		assert.Equal(t, DirectionHorizontal, inv)

		inv, err = Inverse(DirectionHorizontal)
		require.NoError(t, err)
		assert.Equal(t, DirectionVertical, inv)
	})

	t.Run("is an involution", func(t *testing.T) {
		for _, d := range []Direction{DirectionVertical, DirectionHorizontal} {
			inv := MustInverse(d)
			assert.Equal(t, d, MustInverse(inv))
		}
	})

	t.Run("rejects values outside the enum", func(t *testing.T) {
		_, err := Inverse(Direction(42))
		require.ErrorIs(t, err, ErrInvalidDirection)

		_, err = Inverse(Direction(-1))
		require.ErrorIs(t, err, ErrInvalidDirection)
	})

	t.Run("MustInverse panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { MustInverse(Direction(7)) })
	})
}

func TestDirectionFromModifiers(t *testing.T) {
	tests := []struct {
		name    string
		mods    Modifiers
		want    Direction
		wantOK  bool
	}{
		{name: "shift selects vertical", mods: Modifiers{Shift: true}, want: DirectionVertical, wantOK: true},
		{name: "alt selects horizontal", mods: Modifiers{Alt: true}, want: DirectionHorizontal, wantOK: true},
		{name: "shift wins over alt", mods: Modifiers{Shift: true, Alt: true}, want: DirectionVertical, wantOK: true},
		{name: "no modifier means no split", mods: Modifiers{}, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DirectionFromModifiers(tt.mods)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "vertical", DirectionVertical.String())
	assert.Equal(t, "horizontal", DirectionHorizontal.String())
	assert.Equal(t, "direction(9)", Direction(9).String())
	assert.True(t, DirectionVertical.Valid())
	assert.False(t, Direction(9).Valid())
}

func TestPlacementString(t *testing.T) {
	assert.Equal(t, "start", PlacementStart.String())
	assert.Equal(t, "end", PlacementEnd.String())
}
