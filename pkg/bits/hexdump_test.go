package bits_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bitkit/pkg/bits"
)

func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestHexDump(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", nil, ""},
		{"single byte", []byte{0xAB}, "00000000  AB\n"},
		{"two bytes", []byte{0x00, 0xFF}, "00000000  00 FF\n"},
		{
			"full row",
			sequence(16),
			"00000000  00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F\n",
		},
		{
			"partial second row",
			sequence(18),
			"00000000  00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F\n" +
				"00000010  10 11\n",
		},
		{
			"text",
			[]byte("Hello"),
			"00000000  48 65 6C 6C 6F\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := bits.HexDumpSize(len(tt.data))
			require.NoError(t, err)
			require.Equal(t, len(tt.want), size)

			out := bits.NewBuffer(size + 1)
			got, err := bits.HexDump(tt.data, out)
			require.NoError(t, err)
			assert.Same(t, out, got)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestHexDumpRowOffsets(t *testing.T) {
	data := sequence(300)
	size, err := bits.HexDumpSize(len(data))
	require.NoError(t, err)

	out, err := bits.HexDump(data, bits.NewBuffer(size+1))
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, rows, 19)
	assert.True(t, strings.HasPrefix(rows[1], "00000010  10 11"))
	assert.Equal(t, "00000120  20 21 22 23 24 25 26 27 28 29 2A 2B", rows[18])
	for _, row := range rows[:18] {
		assert.Len(t, row, 57)
	}
}

func TestHexDumpSize(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 13, 15: 55, 16: 58, 17: 71, 32: 116} {
		got, err := bits.HexDumpSize(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}

	_, err := bits.HexDumpSize(-1)
	require.Error(t, err)
}

func TestHexDumpSizeOffsetLimit(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int cannot hold a 2^32 byte length")
	}
	shift := 32
	limit := 1 << shift

	size, err := bits.HexDumpSize(limit)
	require.NoError(t, err)
	assert.Equal(t, 15569256448, size)

	_, err = bits.HexDumpSize(limit + 1)
	require.ErrorIs(t, err, bits.ErrInputTooLarge)
}

func TestHexDumpBufferTooSmall(t *testing.T) {
	data := sequence(20)
	size, err := bits.HexDumpSize(len(data))
	require.NoError(t, err)

	out := bits.NewBuffer(size)
	_, err = bits.FormatUnsignedHex(1, 4, out)
	require.NoError(t, err)

	got, err := bits.HexDump(data, out)
	require.ErrorIs(t, err, bits.ErrBufferTooSmall)
	assert.Same(t, out, got)
	assert.Empty(t, got.String())

	_, err = bits.HexDump(nil, bits.NewBuffer(0))
	require.ErrorIs(t, err, bits.ErrBufferTooSmall)

	_, err = bits.HexDump(nil, bits.NewBuffer(1))
	require.NoError(t, err)
}

func TestHexDumpDoesNotReadPastSlice(t *testing.T) {
	backing := sequence(32)
	window := backing[4:6]

	out, err := bits.HexDump(window, bits.NewBuffer(64))
	require.NoError(t, err)
	assert.Equal(t, "00000000  04 05\n", out.String())
}
