package model

// MinuteVariant selects how the four minute indicators are shown.
type MinuteVariant uint8

const (
	MinuteOff MinuteVariant = iota
	MinuteLED4x
	MinuteLED7x
	MinuteCorners
	MinuteInWords
)

// SecondVariant selects how the seconds ring is shown.
type SecondVariant uint8

const (
	SecondOff SecondVariant = iota
	SecondFrameDot
	SecondFrameSector
)
