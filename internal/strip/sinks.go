package strip

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"

	"github.com/coreman2200/funtimes-wordclock/internal/model"
)

// DefaultFreq is the WS281x / SK6812 data rate.
const DefaultFreq = 800 * physic.KiloHertz

// NRZ writes raw frames to an nrzled device.
type NRZ struct {
	w    io.Writer
	dev  *nrzled.Dev
	port spi.PortCloser
}

// NewNRZ wraps any raw pixel writer, typically an *nrzled.Dev.
func NewNRZ(w io.Writer) *NRZ {
	n := &NRZ{w: w}
	if d, ok := w.(*nrzled.Dev); ok {
		n.dev = d
	}
	return n
}

// OpenNRZ opens an SPI port and drives n LEDs with one channel per byte of
// the color type.
func OpenNRZ(port string, n int, ct model.ColorType, freq physic.Frequency) (*NRZ, error) {
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("open spi %q: %w", port, err)
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: n,
		Channels:  ct.Channels(),
		Freq:      freq,
	})
	if err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return &NRZ{w: d, dev: d, port: p}, nil
}

func (n *NRZ) Send(f Frame) error {
	if _, err := n.w.Write(f.Data); err != nil {
		return fmt.Errorf("nrz write: %w", err)
	}
	return nil
}

func (n *NRZ) Close() error {
	if n.dev != nil {
		if err := n.dev.Halt(); err != nil {
			return err
		}
	}
	if n.port != nil {
		return n.port.Close()
	}
	return nil
}

// DrawerSink renders frames as a one-row image onto a display.Drawer.
type DrawerSink struct {
	d display.Drawer
}

func NewDrawerSink(d display.Drawer) *DrawerSink {
	return &DrawerSink{d: d}
}

// Image converts f to a 1xN image, folding the white channel into RGB.
func Image(f Frame) *image.NRGBA {
	n := f.Len()
	im := image.NewNRGBA(image.Rect(0, 0, n, 1))
	for x := 0; x < n; x++ {
		p := f.Pixel(x)
		im.SetNRGBA(x, 0, color.NRGBA{
			R: addSat(p.R, p.W),
			G: addSat(p.G, p.W),
			B: addSat(p.B, p.W),
			A: 255,
		})
	}
	return im
}

func (s *DrawerSink) Send(f Frame) error {
	return s.d.Draw(s.d.Bounds(), Image(f), image.Point{})
}

func (s *DrawerSink) Close() error {
	return s.d.Halt()
}

func addSat(a, b uint8) uint8 {
	if v := int(a) + int(b); v < 255 {
		return uint8(v)
	}
	return 255
}

// Open returns an SPI sink for port, or a console drawer when no SPI port is
// available. The bool reports whether real hardware is attached.
func Open(port string, n int, ct model.ColorType) (Sink, bool) {
	s, err := OpenNRZ(port, n, ct, DefaultFreq)
	if err != nil {
		log.Warn().Err(err).Str("port", port).Msg("no SPI strip; printing at the console")
		return NewDrawerSink(screen.New(n)), false
	}
	return s, true
}
