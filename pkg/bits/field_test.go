package bits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bitkit/pkg/bits"
)

func TestExtractThreeBits(t *testing.T) {
	tests := []struct {
		value uint32
		start int
		want  uint32
	}{
		{29495, 6, 4},
		{29495, 7, 6},
		{29495, 0, 7},
		{0xFFFFFFFF, 29, 7},
		{0xA0000000, 29, 5},
		{0x4, 0, 4},
		{0x8, 1, 4},
		{0, 15, 0},
	}

	for _, tt := range tests {
		got, err := bits.ExtractThreeBits(tt.value, tt.start)
		require.NoError(t, err, "value %d start %d", tt.value, tt.start)
		assert.Equal(t, tt.want, got, "value %d start %d", tt.value, tt.start)
		assert.LessOrEqual(t, got, uint32(7))
	}
}

func TestExtractThreeBitsInvalidStart(t *testing.T) {
	for _, start := range []int{-1, 30, 31, 32} {
		_, err := bits.ExtractThreeBits(0xFFFFFFFF, start)
		require.ErrorIs(t, err, bits.ErrInvalidStart, "start %d", start)
	}
}

func TestExtractField(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		start int
		n     int
		want  uint32
	}{
		{"high half", 0xDEADBEEF, 16, 16, 0xDEAD},
		{"low byte", 0xDEADBEEF, 0, 8, 0xEF},
		{"whole word", 0xFFFFFFFF, 0, 32, 0xFFFFFFFF},
		{"top bit", 0x80000000, 31, 1, 1},
		{"middle nibble", 0x00F00000, 20, 4, 0xF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bits.ExtractField(tt.value, tt.start, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFieldErrors(t *testing.T) {
	_, err := bits.ExtractField(0, 0, 0)
	require.ErrorIs(t, err, bits.ErrInvalidWidth)

	_, err = bits.ExtractField(0, 0, 33)
	require.ErrorIs(t, err, bits.ErrInvalidWidth)

	_, err = bits.ExtractField(0, 1, 32)
	require.ErrorIs(t, err, bits.ErrInvalidStart)

	_, err = bits.ExtractField(0, 28, 5)
	require.ErrorIs(t, err, bits.ErrInvalidStart)
}
