package sensor

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// ADC is the part of analog.PinADC the light sensor needs.
type ADC interface {
	Read() (analog.Sample, error)
}

// Fixed is a constant ambient level, for hosts without a sensor.
type Fixed float64

func (f Fixed) Level() float64 { return float64(f) }

// LDR turns raw photoresistor readings into an ambient level in [0,100].
// Dark and Bright are the calibration points as percent of full scale; Cal
// is added to the result.
type LDR struct {
	adc       ADC
	fullScale int32
	Dark      uint8
	Bright    uint8
	Cal       int8

	last float64
}

func NewLDR(adc ADC, fullScale int32, dark, bright uint8) *LDR {
	return &LDR{adc: adc, fullScale: fullScale, Dark: dark, Bright: bright, last: 100}
}

// Level samples the ADC. A failed read keeps the previous level.
func (l *LDR) Level() float64 {
	s, err := l.adc.Read()
	if err != nil {
		log.Warn().Err(err).Msg("ldr read failed")
		return l.last
	}
	l.last = clamp(Normalize(s.Raw, l.fullScale, l.Dark, l.Bright)+float64(l.Cal), 0, 100)
	return l.last
}

// Normalize maps raw onto [0,100] between the dark and bright calibration
// points. An inverted or empty window falls back to the plain percentage.
func Normalize(raw, fullScale int32, dark, bright uint8) float64 {
	if fullScale <= 0 {
		return 0
	}
	pct := clamp(float64(raw)*100/float64(fullScale), 0, 100)
	if bright <= dark {
		return pct
	}
	return clamp((pct-float64(dark))*100/float64(bright-dark), 0, 100)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ADS1115FullScale is the largest positive single-ended reading.
const ADS1115FullScale = 1<<15 - 1

// OpenADS1115 opens channel 0 of an ADS1115 on the named I²C bus. The
// returned func releases the pin and the bus.
func OpenADS1115(bus string, maxV physic.ElectricPotential) (analog.PinADC, func() error, error) {
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, nil, fmt.Errorf("open i2c %q: %w", bus, err)
	}
	adc, err := ads1x15.NewADS1115(b, &ads1x15.DefaultOpts)
	if err != nil {
		_ = b.Close()
		return nil, nil, fmt.Errorf("ads1115: %w", err)
	}
	pin, err := adc.PinForChannel(ads1x15.Channel0, maxV, 1*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		_ = b.Close()
		return nil, nil, fmt.Errorf("ads1115 channel: %w", err)
	}
	closer := func() error {
		if err := pin.Halt(); err != nil {
			return err
		}
		return b.Close()
	}
	return pin, closer, nil
}
