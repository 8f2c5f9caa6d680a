package model_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/coreman2200/funtimes-wordclock/internal/model"
)

var TestHSBIsExpectedRGB = []struct {
	Color Color
	R     uint8
	G     uint8
	B     uint8
}{
	{NewHSB(0, 1, 1, 0), 255, 0, 0},
	{NewHSB(1.0/3, 1, 1, 0), 0, 255, 0},
	{NewHSB(2.0/3, 1, 1, 0), 0, 0, 255},
	{NewHSB(0, 0, 1, 0), 255, 255, 255},
	{NewHSB(0.5, 1, 0, 0), 0, 0, 0},
	{NewHSB(1, 1, 1, 0), 255, 0, 0},
}

func TestColorRGB(t *testing.T) {
	for k, v := range TestHSBIsExpectedRGB {
		t.Run("Given HSB"+strconv.Itoa(k), func(t *testing.T) {
			r, g, b := v.Color.RGB()
			assert.Equal(t, v.R, r, "red")
			assert.Equal(t, v.G, g, "green")
			assert.Equal(t, v.B, b, "blue")
		})
	}
}

func TestColorScaledLeavesOriginal(t *testing.T) {
	c := NewHSB(0.25, 0.5, 0.8, 200)
	half := c.Scaled(0.5)

	assert.Equal(t, float32(0.4), half.B)
	assert.Equal(t, uint8(100), half.Alpha)
	assert.Equal(t, c.H, half.H)
	assert.Equal(t, c.S, half.S)
	assert.Equal(t, float32(0.8), c.B)
	assert.Equal(t, uint8(200), c.Alpha)
}

func TestFromRGB(t *testing.T) {
	c := FromRGB(0, 0, 255, 7)
	assert.InDelta(t, 2.0/3, c.H, 1e-4)
	assert.InDelta(t, 1, c.S, 1e-4)
	assert.InDelta(t, 1, c.B, 1e-4)
	assert.Equal(t, uint8(7), c.Alpha)
}

func TestColorTypeChannels(t *testing.T) {
	assert.Equal(t, 3, RGB.Channels())
	assert.Equal(t, 4, RGBW.Channels())
	assert.Equal(t, "rgbw", RGBW.String())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "foreground", Foreground.String())
	assert.Equal(t, "background", Background.String())
	assert.Equal(t, "effect", Effect.String())
}
