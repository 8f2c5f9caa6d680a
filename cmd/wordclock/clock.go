package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-wordclock/internal/model"
	"github.com/coreman2200/funtimes-wordclock/internal/render"
)

// clock drives a Renderer from wall time: the hour as two digits, the minute
// within its five-minute step as ticks, and the seconds on the ring.
type clock struct {
	r      *render.Renderer
	rotate bool

	last  time.Time
	valid bool
}

// tick renders now and reports whether the displayed hour or minute changed.
// A new second also counts as a change for the flush policy while the
// seconds ring is shown.
func (c *clock) tick(now time.Time) (bool, error) {
	changed := !c.valid || now.Hour() != c.last.Hour() || now.Minute() != c.last.Minute()
	ring := c.r.Settings.SecondVariant != model.SecondOff &&
		(!c.valid || now.Second() != c.last.Second())
	c.last, c.valid = now, true

	if changed {
		h := now.Hour()
		c.r.StampNumbers(byte('0'+h/10), byte('0'+h%10))
		if c.rotate {
			c.r.Rotate()
		}
		c.r.SetMinuteTicks(now.Minute() % 5)
	}
	c.r.SetSeconds(now.Second())
	return changed, c.r.RenderFrame(changed || ring)
}

func (c *clock) run(ctx context.Context, every time.Duration) error {
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		changed, err := c.tick(c.r.Now())
		if err != nil {
			return err
		}
		if changed {
			log.Debug().Time("at", c.last).Msg("time changed")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}
