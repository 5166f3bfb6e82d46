package bits_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bitkit/pkg/bits"
)

func TestFormatUnsignedBinary(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		width bits.Width
		want  string
	}{
		{"byte", 18, 8, "0b00010010"},
		{"half", 65400, 16, "0b1111111101111000"},
		{"all ones word", 0xFFFFFFFF, 32, "0b" + strings.Repeat("1", 32)},
		{"zero word", 0, 32, "0b" + strings.Repeat("0", 32)},
		{"single bit set", 1, 1, "0b1"},
		{"single bit clear", 0, 1, "0b0"},
		{"odd width", 5, 3, "0b101"},
		{"top bit of word", 0x80000000, 32, "0b1" + strings.Repeat("0", 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bits.NewBuffer(bits.BinarySize(tt.width) + 1)
			n, err := bits.FormatUnsignedBinary(tt.value, tt.width, out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, int(tt.width)+2, n)
			assert.Equal(t, n, out.Len())
		})
	}
}

func TestFormatUnsignedBinaryErrors(t *testing.T) {
	tests := []struct {
		name     string
		value    uint32
		width    bits.Width
		capacity int
		wantErr  error
	}{
		{"overflow byte", 256, 8, 64, bits.ErrWidthOverflow},
		{"overflow single bit", 2, 1, 64, bits.ErrWidthOverflow},
		{"overflow half", 0x10000, 16, 64, bits.ErrWidthOverflow},
		{"no room for terminator", 18, 8, 10, bits.ErrBufferTooSmall},
		{"no room for prefix", 1, 1, 2, bits.ErrBufferTooSmall},
		{"empty buffer", 0, 4, 0, bits.ErrBufferTooSmall},
		{"zero width", 0, 0, 64, bits.ErrInvalidWidth},
		{"width above word", 0, 33, 64, bits.ErrInvalidWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bits.NewBuffer(tt.capacity)
			if tt.capacity >= 4 {
				_, err := bits.FormatUnsignedBinary(1, 1, out)
				require.NoError(t, err)
				require.Equal(t, "0b1", out.String())
			}

			n, err := bits.FormatUnsignedBinary(tt.value, tt.width, out)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, n)
			assert.Empty(t, out.String())
		})
	}
}

func TestFormatUnsignedBinaryExactCapacity(t *testing.T) {
	// 2 prefix + 32 digits + terminator, the largest buffer ever needed.
	out := bits.NewBuffer(35)
	n, err := bits.FormatUnsignedBinary(0xFFFFFFFF, 32, out)
	require.NoError(t, err)
	assert.Equal(t, 34, n)

	_, err = bits.FormatUnsignedBinary(0xFFFFFFFF, 32, bits.NewBuffer(34))
	require.ErrorIs(t, err, bits.ErrBufferTooSmall)
}

func TestFormatUnsignedBinaryNilBuffer(t *testing.T) {
	_, err := bits.FormatUnsignedBinary(1, 1, nil)
	require.ErrorIs(t, err, bits.ErrBufferTooSmall)
}

func TestFormatUnsignedBinaryRoundTrip(t *testing.T) {
	out := bits.NewBuffer(64)
	for w := bits.Width(1); w <= 32; w++ {
		maxVal := uint32(math.MaxUint32 >> (32 - int(w)))
		for _, v := range []uint32{0, 1 & maxVal, maxVal / 3, maxVal / 2, maxVal - maxVal/7, maxVal} {
			n, err := bits.FormatUnsignedBinary(v, w, out)
			require.NoError(t, err, "value %d width %d", v, w)
			require.Equal(t, int(w)+2, n)

			s := out.String()
			require.True(t, strings.HasPrefix(s, "0b"))
			require.Len(t, s[2:], int(w))
			got, err := strconv.ParseUint(s[2:], 2, 32)
			require.NoError(t, err)
			require.Equal(t, uint64(v), got, "width %d", w)
		}

		if w < 32 {
			_, err := bits.FormatUnsignedBinary(maxVal+1, w, out)
			require.ErrorIs(t, err, bits.ErrWidthOverflow, "width %d", w)
		}
	}
}

func TestFormatSignedBinary(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		width bits.Width
		want  string
	}{
		{"positive byte", 5, 8, "0b00000101"},
		{"minus one nibble", -1, 4, "0b1111"},
		{"minus one word", -1, 32, "0b" + strings.Repeat("1", 32)},
		{"min byte", -128, 8, "0b10000000"},
		{"min word", math.MinInt32, 32, "0b1" + strings.Repeat("0", 31)},
		{"truncated negative", -2, 1, "0b0"},
		{"truncated positive", 300, 8, "0b00101100"},
		{"max word", math.MaxInt32, 32, "0b0" + strings.Repeat("1", 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bits.NewBuffer(bits.BinarySize(tt.width) + 1)
			n, err := bits.FormatSignedBinary(tt.value, tt.width, out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, len(tt.want), n)
		})
	}
}

func TestFormatSignedBinaryErrors(t *testing.T) {
	_, err := bits.FormatSignedBinary(-1, 8, bits.NewBuffer(10))
	require.ErrorIs(t, err, bits.ErrBufferTooSmall)

	_, err = bits.FormatSignedBinary(-1, 0, bits.NewBuffer(64))
	require.ErrorIs(t, err, bits.ErrInvalidWidth)

	_, err = bits.FormatSignedBinary(-1, 40, bits.NewBuffer(64))
	require.ErrorIs(t, err, bits.ErrInvalidWidth)
}

func TestFormatSignedBinaryMatchesUnsignedPattern(t *testing.T) {
	a := bits.NewBuffer(64)
	b := bits.NewBuffer(64)
	for _, v := range []int32{-1, -2, -29495, 0, 7, math.MinInt32} {
		_, err := bits.FormatSignedBinary(v, 32, a)
		require.NoError(t, err)
		_, err = bits.FormatUnsignedBinary(uint32(v), 32, b)
		require.NoError(t, err)
		assert.Equal(t, b.String(), a.String(), "value %d", v)
	}
}

func TestFormattingIsIdempotent(t *testing.T) {
	formatters := map[string]func(*bits.Buffer) (int, error){
		"unsigned binary": func(out *bits.Buffer) (int, error) { return bits.FormatUnsignedBinary(29495, 16, out) },
		"signed binary":   func(out *bits.Buffer) (int, error) { return bits.FormatSignedBinary(-29495, 32, out) },
		"hex":             func(out *bits.Buffer) (int, error) { return bits.FormatUnsignedHex(0xCAFE, 16, out) },
		"hex dump": func(out *bits.Buffer) (int, error) {
			_, err := bits.HexDump(sequence(18), out)
			return out.Len(), err
		},
	}

	for name, format := range formatters {
		t.Run(name, func(t *testing.T) {
			first := bits.NewBuffer(128)
			second := bits.NewBuffer(128)
			n1, err1 := format(first)
			n2, err2 := format(second)
			require.NoError(t, err1)
			require.NoError(t, err2)
			assert.Equal(t, n1, n2)
			assert.Equal(t, first.String(), second.String())
		})
	}
}
