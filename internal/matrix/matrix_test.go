package matrix_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/coreman2200/funtimes-wordclock/internal/matrix"
)

func TestReverseBits8(t *testing.T) {
	for x := 0; x < 256; x++ {
		v := uint8(x)
		assert.Equal(t, bits.Reverse8(v), ReverseBits8(v), "reverse of %#x", v)
		assert.Equal(t, v, ReverseBits8(ReverseBits8(v)))
	}
}

func TestReverseBits32(t *testing.T) {
	samples := []uint32{0, 1, 0x80000000, 0xFFFFFFFF, 0x12345678, 0xDEADBEEF, 0x000007FF, 0xAAAA5555}
	for _, v := range samples {
		assert.Equal(t, bits.Reverse32(v), ReverseBits32(v), "reverse of %#x", v)
		assert.Equal(t, v, ReverseBits32(ReverseBits32(v)))
	}
}

func TestClampHue(t *testing.T) {
	for _, h := range []uint16{0, 1, 180, 359, 360} {
		assert.Equal(t, h, ClampHue(h))
	}
	for _, h := range []uint16{361, 400, 720, 65535} {
		assert.Equal(t, uint16(0), ClampHue(h))
	}
}

func sampleFront() Front {
	var f Front
	f[0] = 0b10000000001
	f[1] = 0b01100000000
	f[2] = 0b00000111000
	f[9] = 0b11111111111
	return f
}

func TestMirrorVertical(t *testing.T) {
	f := sampleFront()
	f.MirrorVertical(10, 11)

	assert.Equal(t, uint32(0b10000000001), f[0])
	assert.Equal(t, uint32(0b00000000110), f[1])
	assert.Equal(t, uint32(0b00011100000), f[2])
	assert.Equal(t, uint32(0b11111111111), f[9])

	f.MirrorVertical(10, 11)
	assert.Equal(t, sampleFront(), f)
}

func TestMirrorHorizontal(t *testing.T) {
	f := sampleFront()
	f.MirrorHorizontal(10)

	assert.Equal(t, uint32(0b11111111111), f[0])
	assert.Equal(t, uint32(0b00000111000), f[7])
	assert.Equal(t, uint32(0b10000000001), f[9])
	assert.Zero(t, f[10])

	f.MirrorHorizontal(10)
	assert.Equal(t, sampleFront(), f)
}

func TestShiftColumnsRight(t *testing.T) {
	f := sampleFront()
	f.ShiftColumnsRight()
	assert.Equal(t, uint32(0b100000000010), f[0])
	assert.Equal(t, uint32(0b11000000000), f[1])
}

func TestFrontSetBit(t *testing.T) {
	var f Front
	f.Set(3, 4, true)
	assert.True(t, f.Bit(3, 4))
	assert.Equal(t, uint32(1<<4), f[3])
	f.Set(3, 4, false)
	assert.False(t, f.Bit(3, 4))
	f.Set(3, 4, true)
	f.Clear()
	assert.Equal(t, Front{}, f)
}

func TestMinutesMirror(t *testing.T) {
	cases := []struct {
		In     Minutes
		Expect Minutes
	}{
		{0b0000, 0b0000},
		{0b0001, 0b1000},
		{0b0011, 0b1100},
		{0b0110, 0b0110},
		{0b1111, 0b1111},
	}
	for _, c := range cases {
		m := c.In
		m.Mirror()
		assert.Equal(t, c.Expect, m)
		m.Mirror()
		assert.Equal(t, c.In, m)
	}
}

func TestFrameBits(t *testing.T) {
	var r Frame
	r.Set(0, true)
	r.Set(59, true)
	assert.True(t, r.Bit(0))
	assert.True(t, r.Bit(59))
	assert.False(t, r.Bit(30))
	r.Set(59, false)
	assert.Equal(t, Frame(1), r)
}
