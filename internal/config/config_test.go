package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
driver: spi
face: de11x11frame
settings_path: /var/lib/wordclock/settings.bin
flush: change
fps: 10
spi:
  port: /dev/spidev0.0
ldr:
  bus: "1"
  max_volts: 3.3
power:
  budget_ma: 2000
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "spi", c.Driver)
	assert.Equal(t, "de11x11frame", c.Face)
	assert.Equal(t, "change", c.Flush)
	assert.Equal(t, 10, c.FPS)
	assert.Equal(t, "/dev/spidev0.0", c.SPI.Port)
	assert.Equal(t, "1", c.LDR.Bus)
	assert.Equal(t, 3.3, c.LDR.MaxVolts)
	assert.Equal(t, 2000.0, c.Power.BudgetmA)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Config{Driver: "sim", Face: "de22x11", Addr: ":9090", LDR: LDR{Fixed: 70}}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
