package bits

import "fmt"

// ExtractThreeBits returns bits start..start+2 of v in the three low bits of
// the result, bit start landing in bit 0. start must be in 0..29.
func ExtractThreeBits(v uint32, start int) (uint32, error) {
	return ExtractField(v, start, 3)
}

// ExtractField returns the n-bit field of v beginning at bit start, shifted
// down to bit 0. n must be in 1..32 and start+n must not exceed 32.
func ExtractField(v uint32, start, n int) (uint32, error) {
	if n < 1 || n > maxWidth {
		return 0, fmt.Errorf("field of %d bits: %w", n, ErrInvalidWidth)
	}
	if start < 0 || start > maxWidth-n {
		return 0, fmt.Errorf("field start %d for %d bits: %w", start, n, ErrInvalidStart)
	}
	return (v >> start) & Width(n).Mask(), nil
}
