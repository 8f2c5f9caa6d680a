package strip

// Limiter keeps a frame inside a supply budget. It runs on the encoded frame
// just before the sinks see it; the staged pixels are left untouched.
//
// Every channel, white included, is modelled as drawing ChannelmA at full
// scale. Up to Knee*BudgetmA the frame passes unchanged. Past the knee the
// excess is halved, and the result never exceeds BudgetmA.
type Limiter struct {
	BudgetmA  float64
	ChannelmA float64
	Knee      float64
}

// DefaultChannelmA is the full-scale draw of one WS2812 channel.
const DefaultChannelmA = 20

func NewLimiter(budgetmA float64) *Limiter {
	return &Limiter{BudgetmA: budgetmA, ChannelmA: DefaultChannelmA, Knee: 0.9}
}

// Current estimates the draw of f in mA.
func (l *Limiter) Current(f Frame) float64 {
	var sum float64
	for _, b := range f.Data {
		sum += float64(b)
	}
	return sum / 255 * l.chanmA()
}

// Apply scales f in place and returns the factor used.
func (l *Limiter) Apply(f Frame) float64 {
	if l == nil || l.BudgetmA <= 0 {
		return 1
	}
	total := l.Current(f)
	if total <= 0 {
		return 1
	}

	knee := l.Knee
	if knee <= 0 || knee >= 1 {
		knee = 0.9
	}
	soft := knee * l.BudgetmA
	if total <= soft {
		return 1
	}
	out := min(soft+(total-soft)/2, l.BudgetmA)
	s := out / total

	for i, b := range f.Data {
		f.Data[i] = uint8(float64(b) * s)
	}
	return s
}

func (l *Limiter) chanmA() float64 {
	if l.ChannelmA > 0 {
		return l.ChannelmA
	}
	return DefaultChannelmA
}
