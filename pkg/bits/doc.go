/*
Package bits formats fixed-width 32-bit integers as binary and hexadecimal
text, applies single-bit operations, extracts bit fields, and renders byte
slices as offset-annotated hex dumps.

# Buffers

Every formatter writes into a caller-owned [Buffer] of fixed capacity. The
package never grows a buffer: it checks the capacity up front and fails with
[ErrBufferTooSmall] when the text (plus a NUL terminator) does not fit. On any
error the buffer is left empty.

	out := bits.NewBuffer(bits.BinarySize(8) + 1)
	n, err := bits.FormatUnsignedBinary(18, 8, out)
	// n == 10, out.String() == "0b00010010"

# Widths

A [Width] selects how many least-significant bits take part in a conversion.
Binary conversion accepts 1..32 and rejects values that need more bits than
requested ([ErrWidthOverflow]). Hex conversion accepts 4, 8, 16 or 32 and
always masks the value down to the requested width:

	bits.FormatUnsignedHex(0x1FF, 8, out) // "0xFF", no error

# Errors

All failures are reported through wrapped sentinel errors; match them with
errors.Is. No result value is reserved as an error marker, so 0xFFFFFFFF is an
ordinary return from [TwiddleBit] and [ExtractField].

Functions in this package hold no state and are safe for concurrent use with
distinct buffers.
*/
package bits
