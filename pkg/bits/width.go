package bits

// Width is the number of least-significant bits of a 32-bit value that take
// part in a conversion.
type Width uint8

// Widths accepted by FormatUnsignedHex, one to eight hex digits.
const (
	Width4  Width = 4
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

const (
	radixPrefixLen = 2
	nibbleBits     = 4
	maxWidth       = 32
)

const hexDigits = "0123456789ABCDEF"

// Valid reports whether w is in 1..32.
func (w Width) Valid() bool {
	return w >= 1 && w <= maxWidth
}

// ValidHex reports whether w is one of 4, 8, 16, 32.
func (w Width) ValidHex() bool {
	switch w {
	case Width4, Width8, Width16, Width32:
		return true
	}
	return false
}

// Mask returns a value with the w low bits set. Widths above 32 saturate.
func (w Width) Mask() uint32 {
	if w >= maxWidth {
		return 0xFFFFFFFF
	}
	return uint32(1)<<w - 1
}

// Max is the largest unsigned value representable in w bits.
func (w Width) Max() uint32 {
	return w.Mask()
}

// BinarySize returns the length of a binary rendering at width w, prefix
// included and terminator excluded.
func BinarySize(w Width) int {
	return radixPrefixLen + int(w)
}

// HexSize returns the length of a hex rendering at width w, prefix included
// and terminator excluded.
func HexSize(w Width) int {
	return radixPrefixLen + int(w)/nibbleBits
}

// putHex writes the low digits nibbles of v into dst, most significant first.
func putHex(dst []byte, v uint32, digits int) {
	for i := 0; i < digits; i++ {
		shift := nibbleBits * (digits - 1 - i)
		dst[i] = hexDigits[(v>>shift)&0xF]
	}
}
