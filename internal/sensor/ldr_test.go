package sensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/analog"
)

type fakeADC struct {
	raw int32
	err error
}

func (f *fakeADC) Read() (analog.Sample, error) {
	return analog.Sample{Raw: f.raw}, f.err
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 50.0, Normalize(500, 1000, 0, 100))
	assert.Equal(t, 0.0, Normalize(100, 1000, 20, 80))
	assert.Equal(t, 50.0, Normalize(500, 1000, 20, 80))
	assert.Equal(t, 100.0, Normalize(900, 1000, 20, 80))
	assert.Equal(t, 30.0, Normalize(300, 1000, 50, 50))
	assert.Equal(t, 0.0, Normalize(-5, 1000, 0, 100))
	assert.Equal(t, 0.0, Normalize(5, 0, 0, 100))
}

func TestLDRKeepsLastOnError(t *testing.T) {
	adc := &fakeADC{raw: 250}
	l := NewLDR(adc, 1000, 0, 100)
	assert.Equal(t, 25.0, l.Level())

	adc.err = errors.New("i2c nack")
	adc.raw = 900
	assert.Equal(t, 25.0, l.Level())
}

func TestLDRCalibrationOffset(t *testing.T) {
	l := NewLDR(&fakeADC{raw: 950}, 1000, 0, 100)
	l.Cal = 10
	assert.Equal(t, 100.0, l.Level())
	l.Cal = -10
	assert.Equal(t, 85.0, l.Level())
}

func TestFixed(t *testing.T) {
	assert.Equal(t, 42.0, Fixed(42).Level())
}
