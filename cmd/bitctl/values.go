package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"github.com/joshuapare/bitkit/pkg/bits"
)

// parseUint32 accepts Go integer literal syntax (0x, 0b, 0o, underscores).
func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, fmt.Errorf("value %s is not an unsigned 32-bit integer: %w", s, err)
	}
	return v, nil
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	v, err := safecast.Conv[int32](n)
	if err != nil {
		return 0, fmt.Errorf("value %s is not a signed 32-bit integer: %w", s, err)
	}
	return v, nil
}

func parseIndex(s, what string) (int, error) {
	n, err := strconv.ParseInt(s, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return int(n), nil
}

func toWidth(w int) (bits.Width, error) {
	v, err := safecast.Conv[uint8](w)
	if err != nil {
		return 0, fmt.Errorf("width %d: %w", w, bits.ErrInvalidWidth)
	}
	return bits.Width(v), nil
}

// hexWord renders v as a full 32-bit hex word.
func hexWord(v uint32) string {
	out := bits.NewBuffer(bits.HexSize(bits.Width32) + 1)
	if _, err := bits.FormatUnsignedHex(v, bits.Width32, out); err != nil {
		return ""
	}
	return out.String()
}
