package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-wordclock/internal/matrix"
)

func TestGridSerpentineIndex(t *testing.T) {
	g := &Grid{RowsN: 3, ColsN: 4, Order: Serpentine{XFlipEveryRow: true}}

	assert.Equal(t, 0, g.WordIndex(0, 0))
	assert.Equal(t, 3, g.WordIndex(0, 3))
	assert.Equal(t, 7, g.WordIndex(1, 0))
	assert.Equal(t, 4, g.WordIndex(1, 3))
	assert.Equal(t, 8, g.WordIndex(2, 0))
	assert.Equal(t, 7, g.WordIndexFlat(4))
}

func TestGridBottomUp(t *testing.T) {
	g := &Grid{RowsN: 3, ColsN: 4, Order: Serpentine{XFlipEveryRow: true, BottomUp: true}}

	assert.Equal(t, 8, g.WordIndex(0, 0))
	assert.Equal(t, 7, g.WordIndex(1, 0))
	assert.Equal(t, 0, g.WordIndex(2, 0))
}

func TestGridIndexIsPermutation(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		require.NoError(t, err)
		seen := map[int]bool{}
		for i := 0; i < f.WordPixels(); i++ {
			idx := f.WordIndexFlat(i)
			assert.False(t, seen[idx], "%s: index %d mapped twice", name, idx)
			assert.True(t, idx >= 0 && idx < f.WordPixels(), "%s: index %d out of range", name, idx)
			seen[idx] = true
		}
		assert.LessOrEqual(t, f.Rows(), matrix.MaxRowSize)
		assert.LessOrEqual(t, f.Cols(), 32)
	}
}

func TestGridBitsAreMSBFirst(t *testing.T) {
	g := &Grid{RowsN: 2, ColsN: 11}
	var f matrix.Front

	g.SetBit(&f, 1, 0, true)
	assert.Equal(t, uint32(1<<10), f[1])
	assert.True(t, g.Bit(&f, 11))

	g.SetBit(&f, 1, 10, true)
	assert.Equal(t, uint32(1<<10|1), f[1])
	assert.True(t, g.Bit(&f, 21))

	g.SetBit(&f, 1, 0, false)
	assert.False(t, g.Bit(&f, 11))
	assert.Zero(t, f[0])
}

func TestGridPixels(t *testing.T) {
	f, err := Lookup("de11x11")
	require.NoError(t, err)
	assert.Equal(t, 110, f.WordPixels())
	assert.Equal(t, 114, f.Pixels())
	assert.Zero(t, f.FramePixels())

	f, err = Lookup("de11x11frame")
	require.NoError(t, err)
	assert.Equal(t, 170, f.Pixels())
	assert.Equal(t, 60, f.FramePixels())
	assert.Equal(t, 110, f.FrameIndex(0))

	f, err = Lookup("de22x11")
	require.NoError(t, err)
	assert.True(t, f.Has24HourLayout())
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nope")
	assert.Error(t, err)
}

func TestMinuteOrder(t *testing.T) {
	f, err := Lookup("en10x11")
	require.NoError(t, err)
	assert.True(t, f.MirrorMinutes())
	assert.Equal(t, 113, f.MinuteIndex(3))

	f, err = Lookup("de11x11")
	require.NoError(t, err)
	assert.False(t, f.MirrorMinutes())
}
