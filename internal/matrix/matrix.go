package matrix

// MaxRowSize is the largest word-matrix row count any face may report.
const MaxRowSize = 16

// MaxHue is the upper bound of a hue expressed in degrees.
const MaxHue uint16 = 360

// Front holds one bit mask per word-matrix row. Within a row of active width
// w, logical column c lives at bit w-1-c.
type Front [MaxRowSize]uint32

// Minutes holds the four minute indicator bits in its low nibble.
type Minutes uint8

// Frame holds one bit per seconds-ring pixel.
type Frame uint64

// Based on https://graphics.stanford.edu/~seander/bithacks.html
func ReverseBits8(x uint8) uint8 {
	return uint8((uint64(x) * 0x0202020202 & 0x010884422010) % 1023)
}

// Based on https://graphics.stanford.edu/~seander/bithacks.html
func ReverseBits32(x uint32) uint32 {
	x = ((x & 0xaaaaaaaa) >> 1) | ((x & 0x55555555) << 1)
	x = ((x & 0xcccccccc) >> 2) | ((x & 0x33333333) << 2)
	x = ((x & 0xf0f0f0f0) >> 4) | ((x & 0x0f0f0f0f) << 4)
	x = ((x & 0xff00ff00) >> 8) | ((x & 0x00ff00ff) << 8)
	return (x >> 16) | (x << 16)
}

// ClampHue resets hues past MaxHue to 0.
func ClampHue(hue uint16) uint16 {
	if hue > MaxHue {
		return 0
	}
	return hue
}

func (f *Front) Set(row int, bit uint, on bool) {
	if on {
		f[row] |= 1 << bit
	} else {
		f[row] &^= 1 << bit
	}
}

func (f *Front) Bit(row int, bit uint) bool {
	return (f[row]>>bit)&1 == 1
}

func (f *Front) Clear() {
	*f = Front{}
}

// MirrorVertical flips every active row left to right. The reversed mask is
// shifted back down so it stays within the row's cols low bits.
func (f *Front) MirrorVertical(rows, cols int) {
	for row := 0; row < rows; row++ {
		f[row] = ReverseBits32(f[row])
		f[row] >>= uint(32 - cols)
	}
}

// MirrorHorizontal reverses the order of the active rows (top to bottom).
func (f *Front) MirrorHorizontal(rows int) {
	tmp := *f
	for row := 0; row < rows; row++ {
		f[row] = tmp[rows-row-1]
	}
}

// ShiftColumnsRight advances every row by one column.
func (f *Front) ShiftColumnsRight() {
	for row := range f {
		f[row] <<= 1
	}
}

func (m *Minutes) Set(i int, on bool) {
	if on {
		*m |= 1 << uint(i)
	} else {
		*m &^= 1 << uint(i)
	}
}

func (m Minutes) Bit(i int) bool {
	return (m>>uint(i))&1 == 1
}

// Mirror reverses the order of the four indicator bits.
func (m *Minutes) Mirror() {
	*m = Minutes(ReverseBits8(uint8(*m)) >> 4)
}

func (r *Frame) Set(i int, on bool) {
	if on {
		*r |= 1 << uint(i)
	} else {
		*r &^= 1 << uint(i)
	}
}

func (r Frame) Bit(i int) bool {
	return (r>>uint(i))&1 == 1
}
