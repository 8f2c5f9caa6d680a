package render

import (
	"context"
	"time"

	"github.com/coreman2200/funtimes-wordclock/internal/matrix"
	"github.com/coreman2200/funtimes-wordclock/internal/model"
)

// RenderFrame draws the current bit state and flushes when the policy asks
// for it. It is called once per update tick. The color type is read once, so
// every pixel of the pass uses the same channel layout.
func (r *Renderer) RenderFrame(changed bool) error {
	r.snapshot()
	r.renderWordMatrix(model.Foreground, r.ResolveColor(model.Foreground))
	r.renderWordMatrix(model.Background, r.ResolveColor(model.Background))

	if r.Settings.MinuteVariant != model.MinuteOff {
		r.renderMinuteTicks(model.Foreground)
	}
	if r.Settings.SecondVariant != model.SecondOff {
		r.renderSecondsRing(model.Foreground)
	}

	if !r.Policy.ShouldFlush(changed, r.Now().Minute()) {
		return nil
	}
	return r.Strip.Show()
}

// Sweep lights each strip pixel in turn, alone and at full brightness, with
// the hue walking once around the wheel. It flushes after every pixel.
func (r *Renderer) Sweep(ctx context.Context, wait time.Duration) error {
	r.snapshot()
	n := r.Strip.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r.clearPixel(j)
		}
		r.writePixel(i, model.NewHSB(float32(sweepHue(i, n))/float32(matrix.MaxHue), 1, 1, 0))
		if err := r.Strip.Show(); err != nil {
			return err
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
	return nil
}

func sweepHue(i, n int) uint16 {
	if n <= 1 {
		return 0
	}
	hue := uint16(float32(matrix.MaxHue) * float32(i) / float32(n-1))
	hue = uint16(float32(hue) + float32(matrix.MaxHue)/float32(n))
	return matrix.ClampHue(hue)
}
