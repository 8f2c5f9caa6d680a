package font

const (
	IconCols = 11
	IconRows = 10
)

// Icon identifies an entry of Icons.
type Icon uint8

const (
	IconWifi Icon = iota
	IconHeart
	IconSmiley
	IconCheck
	IconCross
	IconCount
)

// Icons holds one 11-bit mask per row; column c is bit IconCols-1-c.
var Icons = [IconCount][IconRows]uint16{
	IconWifi: {
		0b00000000000,
		0b00111111100,
		0b01000000010,
		0b10011111001,
		0b00100000100,
		0b01001110010,
		0b00010001000,
		0b00000100000,
		0b00001110000,
		0b00000100000,
	},
	IconHeart: {
		0b00000000000,
		0b01110001110,
		0b11111011111,
		0b11111111111,
		0b11111111111,
		0b01111111110,
		0b00111111100,
		0b00011111000,
		0b00001110000,
		0b00000100000,
	},
	IconSmiley: {
		0b00011111000,
		0b00100000100,
		0b01011011010,
		0b10011011001,
		0b10000000001,
		0b10100000101,
		0b10011111001,
		0b01000000010,
		0b00100000100,
		0b00011111000,
	},
	IconCheck: {
		0b00000000000,
		0b00000000001,
		0b00000000011,
		0b00000000110,
		0b10000001100,
		0b11000011000,
		0b01100110000,
		0b00111100000,
		0b00011000000,
		0b00000000000,
	},
	IconCross: {
		0b10000000001,
		0b01000000010,
		0b00100000100,
		0b00010001000,
		0b00001010000,
		0b00000100000,
		0b00001010000,
		0b00010001000,
		0b00100000100,
		0b01000000010,
	},
}

// IconBit reports whether cell (row, col) of icon is lit.
func IconBit(icon Icon, row, col int) bool {
	return Icons[icon][row]&(1<<uint(IconCols-1-col)) != 0
}
