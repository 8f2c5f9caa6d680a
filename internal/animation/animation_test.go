package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlways(t *testing.T) {
	assert.True(t, Always.ShouldFlush(false, 0))
	assert.True(t, Always.ShouldFlush(true, 59))
}

func TestGate(t *testing.T) {
	g := NewGate()
	assert.True(t, g.ShouldFlush(false, 10), "first frame")
	assert.False(t, g.ShouldFlush(false, 10))
	assert.True(t, g.ShouldFlush(true, 10))
	assert.True(t, g.ShouldFlush(false, 11), "minute rolled over")
	assert.False(t, g.ShouldFlush(false, 11))

	g.Hold(true)
	assert.False(t, g.ShouldFlush(true, 12))
	g.Hold(false)
	assert.True(t, g.ShouldFlush(false, 12))
}

func TestByName(t *testing.T) {
	_, ok := ByName("change").(*Gate)
	assert.True(t, ok)
	for _, name := range []string{"always", ""} {
		p := ByName(name)
		_, gate := p.(*Gate)
		assert.False(t, gate, name)
		assert.True(t, p.ShouldFlush(false, 0), name)
	}
}
