package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsFitHeight(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		var seen uint8
		for col := 0; col < Width; col++ {
			v := Column(c, col)
			assert.Zero(t, v>>Height, "glyph %q column %d exceeds font height", c, col)
			seen |= v
		}
		assert.NotZero(t, seen, "glyph %q is blank", c)
	}
}

func TestColumnOutOfTable(t *testing.T) {
	assert.Zero(t, Column(200, 0))
	assert.Zero(t, Column('~', 2))
}

func TestIconsFitWidth(t *testing.T) {
	for i := Icon(0); i < IconCount; i++ {
		for row := 0; row < IconRows; row++ {
			assert.Zero(t, Icons[i][row]>>IconCols, "icon %d row %d", i, row)
		}
	}
	assert.True(t, IconBit(IconCross, 0, 0))
	assert.True(t, IconBit(IconCross, 0, IconCols-1))
	assert.False(t, IconBit(IconCross, 0, 5))
	assert.True(t, IconBit(IconCross, 5, 5))
}
