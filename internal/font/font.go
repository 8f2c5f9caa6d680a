// Package font holds the read-only glyph and icon bitmaps stamped into the
// word matrix.
package font

const (
	Width  = 5
	Height = 7
)

// Glyphs is a 5x7 font indexed by character code. Each entry holds one byte
// per column; bit r of a column byte is row r, top row first.
var Glyphs = [128][Width]uint8{
	' ': {0x00, 0x00, 0x00, 0x00, 0x00},
	'%': {0x23, 0x13, 0x08, 0x64, 0x62},
	'-': {0x08, 0x08, 0x08, 0x08, 0x08},
	'.': {0x00, 0x60, 0x60, 0x00, 0x00},
	'0': {0x3E, 0x51, 0x49, 0x45, 0x3E},
	'1': {0x00, 0x42, 0x7F, 0x40, 0x00},
	'2': {0x42, 0x61, 0x51, 0x49, 0x46},
	'3': {0x21, 0x41, 0x45, 0x4B, 0x31},
	'4': {0x18, 0x14, 0x12, 0x7F, 0x10},
	'5': {0x27, 0x45, 0x45, 0x45, 0x39},
	'6': {0x3C, 0x4A, 0x49, 0x49, 0x30},
	'7': {0x01, 0x71, 0x09, 0x05, 0x03},
	'8': {0x36, 0x49, 0x49, 0x49, 0x36},
	'9': {0x06, 0x49, 0x49, 0x29, 0x1E},
	':': {0x00, 0x36, 0x36, 0x00, 0x00},
	'A': {0x7E, 0x11, 0x11, 0x11, 0x7E},
	'C': {0x3E, 0x41, 0x41, 0x41, 0x22},
	'E': {0x7F, 0x49, 0x49, 0x49, 0x41},
	'F': {0x7F, 0x09, 0x09, 0x09, 0x01},
	'H': {0x7F, 0x08, 0x08, 0x08, 0x7F},
	'I': {0x00, 0x41, 0x7F, 0x41, 0x00},
	'O': {0x3E, 0x41, 0x41, 0x41, 0x3E},
	'P': {0x7F, 0x09, 0x09, 0x09, 0x06},
	'W': {0x3F, 0x40, 0x38, 0x40, 0x3F},
}

// Column returns the column bitmap of glyph c, blank for codes outside the table.
func Column(c byte, col int) uint8 {
	if int(c) >= len(Glyphs) {
		return 0
	}
	return Glyphs[c][col]
}
