package settings

import (
	"bytes"

	"github.com/coreman2200/funtimes-wordclock/internal/model"
)

// HourBoundaries holds the exclusive upper hour of each manual brightness slot.
var HourBoundaries = [8]int{6, 8, 12, 16, 18, 20, 22, 24}

// Hour slot names, matching HourBoundaries.
const (
	H6 = iota
	H8
	H12
	H16
	H18
	H20
	H22
	H24
)

// Settings is the persisted user configuration. Every field is fixed width so
// the struct maps one-to-one onto the stored image.
type Settings struct {
	Serial uint32
	Colors [model.RoleCount]model.Color
	// Hours holds a brightness percentage per slot of HourBoundaries.
	Hours [8]uint8

	Ldr            uint8
	LdrCal         uint8
	AutoLdrEnabled bool
	AutoLdrBright  uint8
	AutoLdrDark    uint8

	MinuteVariant model.MinuteVariant
	SecondVariant model.SecondVariant
	ColorType     model.ColorType
	FaceName      [16]byte

	BootLedBlink bool
	BootLedSweep bool
}

// Defaults returns the factory settings.
func Defaults() *Settings {
	s := &Settings{
		Colors: [model.RoleCount]model.Color{
			model.Foreground: model.NewHSB(0.08, 0.4, 1, 255),
			model.Background: model.NewHSB(0, 0, 0, 0),
			model.Effect:     model.NewHSB(0.6, 1, 1, 0),
		},
		Hours:         [8]uint8{40, 80, 100, 100, 100, 100, 80, 60},
		AutoLdrBright: 100,
		MinuteVariant: model.MinuteLED4x,
		SecondVariant: model.SecondOff,
		ColorType:     model.RGB,
		BootLedSweep:  true,
	}
	s.SetFace("de11x11")
	return s
}

// HourSlot returns the index into Hours for an hour of day.
func HourSlot(hour int) int {
	for i, b := range HourBoundaries {
		if hour < b {
			return i
		}
	}
	return H24
}

// HourBrightness returns the manual brightness percentage for hour.
func (s *Settings) HourBrightness(hour int) uint8 {
	return s.Hours[HourSlot(hour)]
}

func (s *Settings) Color(r model.Role) model.Color {
	return s.Colors[r]
}

func (s *Settings) Face() string {
	return string(bytes.TrimRight(s.FaceName[:], "\x00"))
}

// SetFace stores name, truncated to the field width.
func (s *Settings) SetFace(name string) {
	s.FaceName = [16]byte{}
	copy(s.FaceName[:], name)
}
