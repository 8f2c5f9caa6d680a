package model

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Role selects one of the stored color slots.
type Role uint8

const (
	Foreground Role = iota
	Background
	Effect
	RoleCount
)

func (r Role) String() string {
	switch r {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	case Effect:
		return "effect"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// ColorType is the channel layout of the attached strip.
type ColorType uint8

const (
	RGB ColorType = iota
	RGBW
)

// Channels returns the number of bytes per pixel on the wire.
func (c ColorType) Channels() int {
	if c == RGBW {
		return 4
	}
	return 3
}

func (c ColorType) String() string {
	if c == RGBW {
		return "rgbw"
	}
	return "rgb"
}

// Color is a hue/saturation/brightness triple, all in [0,1], plus a separate
// intensity used as the white channel on RGBW strips.
type Color struct {
	H     float32
	S     float32
	B     float32
	Alpha uint8
}

func NewHSB(h, s, b float32, alpha uint8) Color {
	return Color{H: h, S: s, B: b, Alpha: alpha}
}

// Scaled returns a copy with brightness and alpha multiplied by f.
func (c Color) Scaled(f float32) Color {
	c.B *= f
	c.Alpha = uint8(float32(c.Alpha) * f)
	return c
}

// RGB converts the HSB triple to 8-bit channels. A hue of 1 wraps to red.
func (c Color) RGB() (r, g, b uint8) {
	h := math.Mod(float64(c.H)*360, 360)
	return colorful.Hsv(h, float64(c.S), float64(c.B)).Clamped().RGB255()
}

// FromRGB builds a Color from 8-bit channels, the inverse of RGB.
func FromRGB(r, g, b, alpha uint8) Color {
	h, s, v := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsv()
	return Color{H: float32(h / 360), S: float32(s), B: float32(v), Alpha: alpha}
}

func (c Color) String() string {
	return fmt.Sprintf("hsb(%.3f,%.3f,%.3f)a%d", c.H, c.S, c.B, c.Alpha)
}
