package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Port string `yaml:"port"` // e.g. /dev/spidev0.0 or "" for the first port
}

type LDR struct {
	Bus      string  `yaml:"bus"`       // I²C bus of the ADS1115; "" runs without a sensor
	MaxVolts float64 `yaml:"max_volts"` // ADC full-scale voltage
	Fixed    float64 `yaml:"fixed"`     // ambient level when no sensor is present
}

type Power struct {
	BudgetmA  float64 `yaml:"budget_ma"`  // supply budget for the whole strip; 0 disables limiting
	ChannelmA float64 `yaml:"channel_ma"` // full-scale draw of one LED channel
}

type Config struct {
	Driver       string `yaml:"driver"` // "spi" | "sim"
	Face         string `yaml:"face"`
	SettingsPath string `yaml:"settings_path"`
	Flush        string `yaml:"flush"` // "always" | "change"
	FPS          int    `yaml:"fps"`
	Addr         string `yaml:"addr"`
	LogLevel     string `yaml:"log_level"`

	SPI   SPI   `yaml:"spi,omitempty"`
	LDR   LDR   `yaml:"ldr,omitempty"`
	Power Power `yaml:"power,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
