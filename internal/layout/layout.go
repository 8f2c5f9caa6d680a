package layout

import (
	"fmt"
	"sort"

	"github.com/coreman2200/funtimes-wordclock/internal/matrix"
)

// Face describes a clock-face model: the size of its word matrix and where
// each logical position sits on the physical strip.
type Face interface {
	Name() string
	Rows() int
	Cols() int
	// WordPixels is Rows*Cols.
	WordPixels() int
	// Pixels is the total strip length, word matrix included.
	Pixels() int
	WordIndex(row, col int) int
	// WordIndexFlat maps a logical row-major index to its strip index.
	WordIndexFlat(i int) int
	FramePixels() int
	FrameIndex(i int) int
	MinuteIndex(i int) int
	// MirrorMinutes reports indicators wired in reverse of their tick order.
	MirrorMinutes() bool
	SetBit(f *matrix.Front, row, col int, on bool)
	// Bit reports the logical row-major position i of f.
	Bit(f *matrix.Front, i int) bool
	Has24HourLayout() bool
}

// Serpentine holds the strip's row-to-row wiring.
type Serpentine struct {
	XFlipEveryRow bool
	BottomUp      bool
}

// Grid is a word matrix wired as one continuous strip, optionally followed by
// minute indicators and a seconds ring.
type Grid struct {
	Label      string
	RowsN      int
	ColsN      int
	Order      Serpentine
	Minutes    [4]int
	MinutesRev bool
	FrameStart int
	FrameN     int
	TwentyFour bool
}

var _ Face = (*Grid)(nil)

func (g *Grid) Name() string { return g.Label }

func (g *Grid) Rows() int { return g.RowsN }

func (g *Grid) Cols() int { return g.ColsN }

func (g *Grid) WordPixels() int { return g.RowsN * g.ColsN }

func (g *Grid) Pixels() int {
	n := g.WordPixels()
	for _, m := range g.Minutes {
		if m+1 > n {
			n = m + 1
		}
	}
	if end := g.FrameStart + g.FrameN; g.FrameN > 0 && end > n {
		n = end
	}
	return n
}

// WordIndex maps row, col -> strip index
func (g *Grid) WordIndex(row, col int) int {
	yy := row
	xx := col
	if g.Order.BottomUp {
		yy = g.RowsN - 1 - row
	}
	if yy%2 == 1 && g.Order.XFlipEveryRow {
		xx = g.ColsN - 1 - col
	}
	return yy*g.ColsN + xx
}

func (g *Grid) WordIndexFlat(i int) int {
	return g.WordIndex(i/g.ColsN, i%g.ColsN)
}

func (g *Grid) FramePixels() int { return g.FrameN }

func (g *Grid) FrameIndex(i int) int { return g.FrameStart + i }

func (g *Grid) MinuteIndex(i int) int { return g.Minutes[i] }

func (g *Grid) MirrorMinutes() bool { return g.MinutesRev }

func (g *Grid) bit(col int) uint {
	return uint(g.ColsN - 1 - col)
}

func (g *Grid) SetBit(f *matrix.Front, row, col int, on bool) {
	f.Set(row, g.bit(col), on)
}

func (g *Grid) Bit(f *matrix.Front, i int) bool {
	return f.Bit(i/g.ColsN, g.bit(i%g.ColsN))
}

func (g *Grid) Has24HourLayout() bool { return g.TwentyFour }

func (g *Grid) String() string {
	return fmt.Sprintf("%s{%dx%d,frame=%d}", g.Label, g.RowsN, g.ColsN, g.FrameN)
}

var faces = map[string]func() Face{
	"de11x11": func() Face {
		return &Grid{
			Label: "de11x11", RowsN: 10, ColsN: 11,
			Order:   Serpentine{XFlipEveryRow: true},
			Minutes: [4]int{110, 111, 112, 113},
		}
	},
	"de11x11frame": func() Face {
		return &Grid{
			Label: "de11x11frame", RowsN: 10, ColsN: 11,
			Order:      Serpentine{XFlipEveryRow: true},
			Minutes:    [4]int{110, 125, 140, 155},
			FrameStart: 110, FrameN: 60,
		}
	},
	"de22x11": func() Face {
		return &Grid{
			Label: "de22x11", RowsN: 11, ColsN: 22,
			Order:      Serpentine{XFlipEveryRow: true, BottomUp: true},
			Minutes:    [4]int{242, 243, 244, 245},
			TwentyFour: true,
		}
	},
	"en10x11": func() Face {
		return &Grid{
			Label: "en10x11", RowsN: 10, ColsN: 11,
			Order:      Serpentine{XFlipEveryRow: true, BottomUp: true},
			Minutes:    [4]int{110, 111, 112, 113},
			MinutesRev: true,
		}
	},
}

// Lookup returns a fresh face for the named model.
func Lookup(name string) (Face, error) {
	f, ok := faces[name]
	if !ok {
		return nil, fmt.Errorf("unknown face model: %s", name)
	}
	return f(), nil
}

// Names lists the known face models.
func Names() []string {
	out := make([]string, 0, len(faces))
	for k := range faces {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
