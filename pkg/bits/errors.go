package bits

import "errors"

var (
	// ErrBufferTooSmall indicates the output buffer cannot hold the rendered text and terminator.
	ErrBufferTooSmall = errors.New("bits: buffer too small")
	// ErrWidthOverflow indicates a value needs more bits than the requested binary width.
	ErrWidthOverflow = errors.New("bits: value overflows width")
	// ErrInvalidWidth indicates a width outside the set accepted by the conversion.
	ErrInvalidWidth = errors.New("bits: invalid width")
	// ErrInvalidBitIndex indicates a bit index outside 0..31.
	ErrInvalidBitIndex = errors.New("bits: invalid bit index")
	// ErrInvalidStart indicates a field start that would read past bit 31.
	ErrInvalidStart = errors.New("bits: invalid field start")
	// ErrInvalidOperation indicates an Operation other than Clear, Set or Toggle.
	ErrInvalidOperation = errors.New("bits: invalid operation")
	// ErrInputTooLarge indicates a dump input whose offsets do not fit the offset column.
	ErrInputTooLarge = errors.New("bits: input too large")
)
