package bits

import "fmt"

// FormatUnsignedBinary writes "0b" followed by the w low bits of v, most
// significant first, and returns the number of characters written
// (terminator excluded).
//
// Unlike FormatUnsignedHex, values that need more than w bits are rejected
// with ErrWidthOverflow instead of being truncated.
func FormatUnsignedBinary(v uint32, w Width, out *Buffer) (int, error) {
	if err := checkBinary(w, out); err != nil {
		return 0, err
	}
	if v > w.Max() {
		out.Reset()
		return 0, fmt.Errorf("0x%X needs more than %d bits: %w", v, w, ErrWidthOverflow)
	}
	return putBinary(v, w, out), nil
}

// FormatSignedBinary writes "0b" followed by the w low bits of v's
// two's-complement pattern. The pattern is emitted as-is, so no range check
// applies: FormatSignedBinary(-1, 4, out) yields "0b1111".
func FormatSignedBinary(v int32, w Width, out *Buffer) (int, error) {
	if err := checkBinary(w, out); err != nil {
		return 0, err
	}
	return putBinary(uint32(v), w, out), nil
}

func checkBinary(w Width, out *Buffer) error {
	if !w.Valid() {
		out.Reset()
		return fmt.Errorf("binary width %d: %w", w, ErrInvalidWidth)
	}
	if need := BinarySize(w); !out.fits(need) {
		out.Reset()
		return fmt.Errorf("binary width %d needs %d bytes, have %d: %w",
			w, need+1, out.Cap(), ErrBufferTooSmall)
	}
	return nil
}

func putBinary(v uint32, w Width, out *Buffer) int {
	dst := out.data
	dst[0], dst[1] = '0', 'b'
	for i := 0; i < int(w); i++ {
		dst[radixPrefixLen+i] = '0' + byte(v>>(int(w)-1-i)&1)
	}
	n := BinarySize(w)
	out.commit(n)
	return n
}
