package bits

import "fmt"

// FormatUnsignedHex writes "0x" followed by w/4 uppercase hex digits of the
// w low bits of v and returns the number of characters written (terminator
// excluded). w must be 4, 8, 16 or 32.
//
// Bits of v above w are masked off, never reported: FormatUnsignedHex(0x1FF,
// 8, out) yields "0xFF".
func FormatUnsignedHex(v uint32, w Width, out *Buffer) (int, error) {
	if !w.ValidHex() {
		out.Reset()
		return 0, fmt.Errorf("hex width %d: %w", w, ErrInvalidWidth)
	}
	n := HexSize(w)
	if !out.fits(n) {
		out.Reset()
		return 0, fmt.Errorf("hex width %d needs %d bytes, have %d: %w",
			w, n+1, out.Cap(), ErrBufferTooSmall)
	}

	dst := out.data
	dst[0], dst[1] = '0', 'x'
	putHex(dst[radixPrefixLen:n], v&w.Mask(), int(w)/nibbleBits)
	out.commit(n)
	return n, nil
}
