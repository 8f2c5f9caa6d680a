package strip

import (
	"errors"

	"github.com/coreman2200/funtimes-wordclock/internal/model"
)

// Pixel is one strip LED. W is only sent on RGBW strips.
type Pixel struct {
	R, G, B, W uint8
}

// Driver abstracts an addressable strip: pixels are staged with SetPixel and
// pushed to hardware by Show.
type Driver interface {
	SetPixel(i int, p Pixel)
	Pixel(i int) Pixel
	Len() int
	Show() error
}

// Frame is one encoded strip image.
type Frame struct {
	Channels int
	Data     []byte
}

// Pixel decodes pixel i of f.
func (f Frame) Pixel(i int) Pixel {
	o := i * f.Channels
	p := Pixel{R: f.Data[o], G: f.Data[o+1], B: f.Data[o+2]}
	if f.Channels == 4 {
		p.W = f.Data[o+3]
	}
	return p
}

// Len is the pixel count of f.
func (f Frame) Len() int {
	if f.Channels == 0 {
		return 0
	}
	return len(f.Data) / f.Channels
}

// Sink receives every frame passed to Show.
type Sink interface {
	Send(f Frame) error
	Close() error
}

// Strip buffers pixels and fans frames out to its sinks.
type Strip struct {
	ct    model.ColorType
	px    []Pixel
	sinks []Sink
	shown uint64

	// Limit, when set, caps the current of every flushed frame.
	Limit *Limiter
}

var _ Driver = (*Strip)(nil)

func New(n int, ct model.ColorType, sinks ...Sink) *Strip {
	return &Strip{
		ct:    ct,
		px:    make([]Pixel, n),
		sinks: sinks,
	}
}

// ColorType returns the channel layout frames are encoded with.
func (s *Strip) ColorType() model.ColorType { return s.ct }

func (s *Strip) SetColorType(ct model.ColorType) { s.ct = ct }

func (s *Strip) SetPixel(i int, p Pixel) {
	if i < 0 || i >= len(s.px) {
		return
	}
	s.px[i] = p
}

func (s *Strip) Pixel(i int) Pixel {
	if i < 0 || i >= len(s.px) {
		return Pixel{}
	}
	return s.px[i]
}

func (s *Strip) Len() int { return len(s.px) }

// Shown is the number of frames flushed so far.
func (s *Strip) Shown() uint64 { return s.shown }

// Encode returns the buffered pixels in wire order.
func (s *Strip) Encode() Frame {
	ch := s.ct.Channels()
	f := Frame{Channels: ch, Data: make([]byte, len(s.px)*ch)}
	for i, p := range s.px {
		o := i * ch
		f.Data[o], f.Data[o+1], f.Data[o+2] = p.R, p.G, p.B
		if ch == 4 {
			f.Data[o+3] = p.W
		}
	}
	return f
}

func (s *Strip) Show() error {
	f := s.Encode()
	s.Limit.Apply(f)
	s.shown++
	var errs []error
	for _, sk := range s.sinks {
		if err := sk.Send(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Strip) Close() error {
	var errs []error
	for _, sk := range s.sinks {
		if err := sk.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
