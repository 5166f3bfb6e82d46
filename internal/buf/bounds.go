package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative sizes, returning ok = false when
// either operand is negative or the product would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// RowsSize returns the byte length of rows rows of rowSize bytes plus a fixed
// tail, as used when sizing text output up front:
//
//	total, err := buf.RowsSize(rows, rowSize, tail)
//	if err != nil {
//	    return fmt.Errorf("dump: %w", err)
//	}
func RowsSize(rows, rowSize, tail int) (int, error) {
	if rows < 0 {
		return 0, fmt.Errorf("negative row count: %d", rows)
	}
	if rowSize < 0 || tail < 0 {
		return 0, fmt.Errorf("negative size: row=%d tail=%d", rowSize, tail)
	}
	body, ok := MulOverflowSafe(rows, rowSize)
	if !ok {
		return 0, fmt.Errorf("overflow: rows=%d * rowSize=%d", rows, rowSize)
	}
	total, ok := AddOverflowSafe(body, tail)
	if !ok {
		return 0, fmt.Errorf("overflow: body=%d + tail=%d", body, tail)
	}
	return total, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Clamp returns the sub-slice starting at off holding at most n bytes.
// Out-of-range offsets yield an empty slice.
func Clamp(b []byte, off, n int) []byte {
	if off < 0 || off >= len(b) || n <= 0 {
		return nil
	}
	if rest := len(b) - off; n > rest {
		n = rest
	}
	return b[off : off+n]
}
