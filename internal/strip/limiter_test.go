package strip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-wordclock/internal/model"
)

func whiteFrame(n int) Frame {
	return Frame{Channels: 3, Data: bytes.Repeat([]byte{255}, n*3)}
}

func TestLimiterBudgetClamp(t *testing.T) {
	f := whiteFrame(10)
	l := NewLimiter(300)
	assert.InDelta(t, 600, l.Current(f), 1e-9)

	s := l.Apply(f)
	assert.InDelta(t, 0.5, s, 1e-9)
	assert.LessOrEqual(t, l.Current(f), 300.0)
}

func TestLimiterUnderKnee(t *testing.T) {
	f := whiteFrame(10)
	assert.Equal(t, 1.0, NewLimiter(700).Apply(f))
	assert.Equal(t, whiteFrame(10).Data, f.Data)
}

func TestLimiterSoftKnee(t *testing.T) {
	f := whiteFrame(10)
	s := NewLimiter(650).Apply(f)
	assert.Less(t, s, 1.0)
	assert.Greater(t, s, 585.0/600)
}

func TestLimiterDisabled(t *testing.T) {
	var l *Limiter
	f := whiteFrame(2)
	assert.Equal(t, 1.0, l.Apply(f))
	assert.Equal(t, 1.0, (&Limiter{}).Apply(f))
}

func TestShowAppliesLimit(t *testing.T) {
	rec := &recordSink{}
	s := New(2, model.RGB, rec)
	s.Limit = NewLimiter(60)
	s.SetPixel(0, Pixel{R: 255, G: 255, B: 255})
	s.SetPixel(1, Pixel{R: 255, G: 255, B: 255})

	require.NoError(t, s.Show())
	require.Len(t, rec.frames, 1)
	assert.Equal(t, byte(127), rec.frames[0].Data[0])
	assert.Equal(t, Pixel{R: 255, G: 255, B: 255}, s.Pixel(0), "staged pixels untouched")
}
