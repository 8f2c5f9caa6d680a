package render

import (
	"context"
	"time"

	"github.com/coreman2200/funtimes-wordclock/internal/font"
	"github.com/coreman2200/funtimes-wordclock/internal/model"
)

// StampGlyph sets raw bit col+colOffset of row row+rowOffset for one set bit
// of glyph c's column col. Raw bits count from the right edge, so a stamped
// matrix reads mirrored until MirrorVertical is applied. Unset bits are left
// alone, so callers clear the target area first.
func (r *Renderer) StampGlyph(col, row, colOffset, rowOffset int, c byte) {
	if font.Column(c, col)&(1<<uint(row)) != 0 {
		r.Front.Set(row+rowOffset, uint(col+colOffset), true)
	}
}

// StampIconCell copies one cell of icon into the word matrix, set or clear.
func (r *Renderer) StampIconCell(col, row int, icon font.Icon) {
	r.Face.SetBit(&r.Front, row, col, font.IconBit(icon, row, col))
}

// DigitOffsets returns the left column of the first and second digit.
func (r *Renderer) DigitOffsets() (int, int) {
	if r.Face.Has24HourLayout() {
		return 3, font.Width + 4
	}
	return 0, font.Width + 1
}

// DigitRow returns the first row of a vertically centered digit.
func (r *Renderer) DigitRow() int {
	return (r.Face.Rows() - font.Height) / 2
}

// StampNumbers clears the word matrix and stamps d1 and d2 side by side in
// reading order.
func (r *Renderer) StampNumbers(d1, d2 byte) {
	r.ClearClock()
	off0, off1 := r.DigitOffsets()
	offRow := r.DigitRow()

	for col := 0; col < font.Width; col++ {
		for row := 0; row < font.Height; row++ {
			r.StampGlyph(col, row, off0, offRow, d1)
			r.StampGlyph(col, row, off1, offRow, d2)
		}
	}
	r.Front.MirrorVertical(r.Face.Rows(), r.Face.Cols())
}

// ShowNumbers displays two characters in the effect color and flushes.
func (r *Renderer) ShowNumbers(d1, d2 byte) error {
	r.StampNumbers(d1, d2)
	r.RenderWordMatrix(model.Effect)
	return r.Strip.Show()
}

// ShowIcon displays icon in the foreground color scaled by brightness
// percent and flushes.
func (r *Renderer) ShowIcon(icon font.Icon, brightness uint8) error {
	cols := min(font.IconCols, r.Face.Cols())
	rows := min(font.IconRows, r.Face.Rows())
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			r.StampIconCell(col, row, icon)
		}
	}
	r.snapshot()
	c := r.ResolveColor(model.Foreground).Scaled(float32(brightness) / 100)
	r.renderWordMatrix(model.Foreground, c)
	return r.Strip.Show()
}

// ScrollText moves text in from the right edge one column per step, in the
// effect color, pausing wait between steps.
func (r *Renderer) ScrollText(ctx context.Context, text string, wait time.Duration) error {
	r.ClearClock()
	rows, cols := r.Face.Rows(), r.Face.Cols()
	offRow := r.DigitRow()
	mask := uint32(1)<<uint(cols) - 1

	// Trailing blanks push the last glyph fully off the face.
	steps := len(text)*(font.Width+1) + cols
	for s := 0; s < steps; s++ {
		r.Front.ShiftColumnsRight()
		for row := 0; row < rows; row++ {
			r.Front[row] &= mask
		}
		ch, col := s/(font.Width+1), s%(font.Width+1)
		if ch < len(text) && col < font.Width {
			for row := 0; row < font.Height; row++ {
				if font.Column(text[ch], col)&(1<<uint(row)) != 0 {
					r.Face.SetBit(&r.Front, offRow+row, cols-1, true)
				}
			}
		}
		r.RenderWordMatrix(model.Effect)
		if err := r.Strip.Show(); err != nil {
			return err
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
