package bits

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/joshuapare/bitkit/internal/buf"
)

const (
	// BytesPerRow is the number of input bytes rendered per dump row.
	BytesPerRow = 16

	offsetDigits = 8
	offsetSep    = "  "
	byteWidth    = 3 // two digits plus a separator or the newline
)

// rowSize returns the rendered length of a row holding n bytes.
func rowSize(n int) int {
	if n == 0 {
		return 0
	}
	return offsetDigits + len(offsetSep) + n*byteWidth
}

// HexDumpSize returns the length of the dump of n bytes, terminator excluded.
// Inputs whose last byte offset does not fit in 32 bits are rejected with
// ErrInputTooLarge.
func HexDumpSize(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("negative dump length: %d", n)
	}
	if n > 0 {
		if _, err := safecast.Conv[uint32](n - 1); err != nil {
			return 0, fmt.Errorf("dump of %d bytes: %w", n, ErrInputTooLarge)
		}
	}
	size, err := buf.RowsSize(n/BytesPerRow, rowSize(BytesPerRow), rowSize(n%BytesPerRow))
	if err != nil {
		return 0, fmt.Errorf("dump of %d bytes: %w", n, err)
	}
	return size, nil
}

// HexDump renders data into out as rows of up to 16 bytes:
//
//	00000000  48 65 6C 6C 6F 2C 20 77 6F 72 6C 64 21 0A 00 01
//	00000010  02 03
//
// Each row starts with the offset of its first byte in eight hex digits and
// ends with a newline. An empty slice renders as the empty string. out is
// returned so the call can be chained; it is left empty on error.
func HexDump(data []byte, out *Buffer) (*Buffer, error) {
	size, err := HexDumpSize(len(data))
	if err != nil {
		out.Reset()
		return out, err
	}
	if !out.fits(size) {
		out.Reset()
		return out, fmt.Errorf("dump of %d bytes needs %d bytes, have %d: %w",
			len(data), size+1, out.Cap(), ErrBufferTooSmall)
	}

	dst := out.data
	pos := 0
	for off := 0; off < len(data); off += BytesPerRow {
		// HexDumpSize bounds every offset to 32 bits.
		putHex(dst[pos:pos+offsetDigits], uint32(off), offsetDigits)
		pos += offsetDigits
		pos += copy(dst[pos:], offsetSep)

		row := buf.Clamp(data, off, BytesPerRow)
		for i, b := range row {
			dst[pos] = hexDigits[b>>4]
			dst[pos+1] = hexDigits[b&0xF]
			if i == len(row)-1 {
				dst[pos+2] = '\n'
			} else {
				dst[pos+2] = ' '
			}
			pos += byteWidth
		}
	}
	out.commit(pos)
	return out, nil
}
