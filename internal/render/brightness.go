package render

import (
	"github.com/coreman2200/funtimes-wordclock/internal/model"
)

// ResolveColor returns the stored color for role with exactly one brightness
// source applied: the ambient sensor in auto mode, the ambient sensor in plain
// LDR mode, or the manual percentage for the current hour. The stored color
// is never modified.
func (r *Renderer) ResolveColor(role model.Role) model.Color {
	c := r.Settings.Color(role)
	switch {
	case r.Settings.AutoLdrEnabled:
		return autoBrightness(c, r.ambient())
	case r.Settings.Ldr == 1:
		return c.Scaled(r.ambient() / 100)
	default:
		return c.Scaled(float32(r.manualBrightness()) / 100)
	}
}

func (r *Renderer) manualBrightness() uint8 {
	return r.Settings.HourBrightness(r.Now().Hour())
}

func autoBrightness(c model.Color, level float32) model.Color {
	c.B = c.B * level / 100
	c.Alpha = uint8(float32(c.Alpha) * level / 100)
	return c
}
