package render

import (
	"github.com/coreman2200/funtimes-wordclock/internal/font"
	"github.com/coreman2200/funtimes-wordclock/internal/model"
	"github.com/coreman2200/funtimes-wordclock/internal/strip"
)

// secondsRingOffset rotates ring bit 0 onto the pixel at twelve o'clock.
const secondsRingOffset = 5

// snapshot fixes the channel layout for the pass that is about to write.
func (r *Renderer) snapshot() {
	r.colorType = r.Settings.ColorType
}

func (r *Renderer) pixel(c model.Color) strip.Pixel {
	red, green, blue := c.RGB()
	p := strip.Pixel{R: red, G: green, B: blue}
	if r.colorType == model.RGBW {
		p.W = c.Alpha
	}
	return p
}

func (r *Renderer) writePixel(i int, c model.Color) {
	r.Strip.SetPixel(i, r.pixel(c))
}

func (r *Renderer) clearPixel(i int) {
	r.Strip.SetPixel(i, strip.Pixel{})
}

// Pixel reads back strip pixel i.
func (r *Renderer) Pixel(i int) model.Color {
	p := r.Strip.Pixel(i)
	return model.FromRGB(p.R, p.G, p.B, p.W)
}

// RenderWordMatrix writes role's color to every lit word-matrix pixel and
// clears the rest. Background inverts the test and leaves lit pixels alone.
func (r *Renderer) RenderWordMatrix(role model.Role) {
	r.snapshot()
	r.renderWordMatrix(role, r.ResolveColor(role))
}

func (r *Renderer) renderWordMatrix(role model.Role, c model.Color) {
	for i := 0; i < r.Face.WordPixels(); i++ {
		lit := r.Face.Bit(&r.Front, i)
		if role == model.Background {
			lit = !lit
		}
		idx := r.Face.WordIndexFlat(i)
		if lit {
			r.writePixel(idx, c)
		} else if role != model.Background {
			r.clearPixel(idx)
		}
	}
}

// RenderMinuteTicks writes role's color to all four minute indicators. Unset
// bits get the same color as set ones, so every indicator is lit whenever
// ticks are rendered.
func (r *Renderer) RenderMinuteTicks(role model.Role) {
	r.snapshot()
	r.renderMinuteTicks(role)
}

func (r *Renderer) renderMinuteTicks(role model.Role) {
	c := r.ResolveColor(role)
	for i := 0; i < 4; i++ {
		r.writePixel(r.Face.MinuteIndex(i), c)
	}
}

// RenderSecondsRing writes role's color to each ring pixel whose Frame bit
// is set, rotated by secondsRingOffset.
func (r *Renderer) RenderSecondsRing(role model.Role) {
	r.snapshot()
	r.renderSecondsRing(role)
}

func (r *Renderer) renderSecondsRing(role model.Role) {
	c := r.ResolveColor(role)
	n := r.Face.FramePixels()
	for i := 0; i < n; i++ {
		if !r.Frame.Bit(i) {
			continue
		}
		if i < n-secondsRingOffset {
			r.writePixel(r.Face.FrameIndex(i)+secondsRingOffset, c)
		} else {
			r.writePixel(r.Face.FrameIndex(i)-n+secondsRingOffset, c)
		}
	}
}

// ClearClock blanks the word matrix, both its bits and its pixels.
func (r *Renderer) ClearClock() {
	cols := r.Face.Cols()
	for i := 0; i < r.Face.WordPixels(); i++ {
		r.Face.SetBit(&r.Front, i/cols, i%cols, false)
		r.clearPixel(r.Face.WordIndexFlat(i))
	}
}

// ClearRow blanks one word-matrix row.
func (r *Renderer) ClearRow(row int) {
	for col := 0; col < r.Face.Cols(); col++ {
		r.Face.SetBit(&r.Front, row, col, false)
		r.clearPixel(r.Face.WordIndex(row, col))
	}
}

// ClearOutsideFont blanks every row above offsetRow and below the font band
// that starts there.
func (r *Renderer) ClearOutsideFont(offsetRow int) {
	for row := 0; row < offsetRow; row++ {
		r.ClearRow(row)
	}
	for row := r.Face.Rows(); row > offsetRow+font.Height; row-- {
		r.ClearRow(row - 1)
	}
}

// ClearFrame blanks the seconds ring pixels.
func (r *Renderer) ClearFrame() {
	for i := 0; i < r.Face.FramePixels(); i++ {
		r.clearPixel(r.Face.FrameIndex(i))
	}
}

// ClearMinutes blanks everything past the word matrix and resets the
// minute bits. Faces with a seconds ring keep their indicators in the ring,
// so nothing is cleared there.
func (r *Renderer) ClearMinutes() {
	if r.Face.FramePixels() != 0 {
		return
	}
	for i := r.Face.WordPixels(); i < r.Face.Pixels(); i++ {
		r.clearPixel(i)
	}
	r.Minutes = 0
}

// ClearAll blanks the word matrix, the seconds ring and the minute region.
func (r *Renderer) ClearAll() {
	r.ClearClock()
	r.ClearFrame()
	r.ClearMinutes()
}
