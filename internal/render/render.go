// Package render turns word-matrix, minute and seconds-ring bit state into
// pixel writes on a strip, using the color roles and brightness rules stored
// in the settings.
//
// A Renderer is owned by one goroutine; none of its methods are safe for
// concurrent use.
package render

import (
	"time"

	"github.com/coreman2200/funtimes-wordclock/internal/animation"
	"github.com/coreman2200/funtimes-wordclock/internal/layout"
	"github.com/coreman2200/funtimes-wordclock/internal/matrix"
	"github.com/coreman2200/funtimes-wordclock/internal/model"
	"github.com/coreman2200/funtimes-wordclock/internal/settings"
	"github.com/coreman2200/funtimes-wordclock/internal/strip"
)

// Ambient reports the ambient light level in [0,100].
type Ambient interface {
	Level() float64
}

// Renderer bundles everything one render pass reads and the bit state it
// renders from.
type Renderer struct {
	Settings *settings.Settings
	Face     layout.Face
	Strip    strip.Driver
	Policy   animation.Policy
	Ambient  Ambient
	Now      func() time.Time

	Front   matrix.Front
	Minutes matrix.Minutes
	Frame   matrix.Frame

	colorType model.ColorType
}

func New(s *settings.Settings, face layout.Face, drv strip.Driver, policy animation.Policy, amb Ambient) *Renderer {
	if policy == nil {
		policy = animation.Always
	}
	return &Renderer{
		Settings: s,
		Face:     face,
		Strip:    drv,
		Policy:   policy,
		Ambient:  amb,
		Now:      time.Now,
	}
}

func (r *Renderer) ambient() float32 {
	if r.Ambient == nil {
		return 100
	}
	return float32(r.Ambient.Level())
}

// SetMinuteTicks lights the first n of the four minute indicators.
func (r *Renderer) SetMinuteTicks(n int) {
	r.Minutes = 0
	for i := 0; i < n && i < 4; i++ {
		r.Minutes.Set(i, true)
	}
	if r.Face.MirrorMinutes() {
		r.Minutes.Mirror()
	}
}

// SetSeconds fills the ring for second sec of the minute, either as a single
// dot or as a growing sector depending on the seconds variant.
func (r *Renderer) SetSeconds(sec int) {
	r.Frame = 0
	n := r.Face.FramePixels()
	if n == 0 {
		return
	}
	pos := sec * n / 60
	switch r.Settings.SecondVariant {
	case model.SecondOff:
	case model.SecondFrameDot:
		r.Frame.Set(pos, true)
	default:
		for i := 0; i <= pos; i++ {
			r.Frame.Set(i, true)
		}
	}
}

// Rotate turns the word matrix by 180 degrees, for faces mounted upside down.
func (r *Renderer) Rotate() {
	r.Front.MirrorHorizontal(r.Face.Rows())
	r.Front.MirrorVertical(r.Face.Rows(), r.Face.Cols())
}
