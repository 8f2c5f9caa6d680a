package animation

// Policy decides whether a rendered frame is pushed to the strip.
type Policy interface {
	ShouldFlush(changed bool, minute int) bool
}

// Func adapts a plain function to a Policy.
type Func func(changed bool, minute int) bool

func (f Func) ShouldFlush(changed bool, minute int) bool { return f(changed, minute) }

// Always flushes every frame.
var Always Policy = Func(func(bool, int) bool { return true })

// Gate flushes when the caller reports a change or the minute rolls over.
// While held (e.g. during a transition that owns the strip) it never flushes.
type Gate struct {
	lastMinute int
	primed     bool
	held       bool
}

func NewGate() *Gate { return &Gate{} }

// Hold suspends or resumes flushing.
func (g *Gate) Hold(on bool) { g.held = on }

func (g *Gate) ShouldFlush(changed bool, minute int) bool {
	if g.held {
		return false
	}
	rolled := !g.primed || minute != g.lastMinute
	g.lastMinute = minute
	g.primed = true
	return changed || rolled
}

// ByName returns the policy for a config value; unknown names flush always.
func ByName(name string) Policy {
	switch name {
	case "change", "gate":
		return NewGate()
	default:
		return Always
	}
}
