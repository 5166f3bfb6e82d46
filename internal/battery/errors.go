package battery

import (
	"errors"

	"github.com/joshuapare/bitkit/pkg/bits"
)

var (
	// ErrBadCase indicates a case whose inputs cannot be applied to its operation.
	ErrBadCase = errors.New("battery: bad case")
	// ErrUnknownKind indicates a case kind that names no operation.
	ErrUnknownKind = errors.New("battery: unknown kind")
	// ErrNoCases indicates a case file without any [[case]] tables.
	ErrNoCases = errors.New("battery: no cases")
)

// Stable names for the formatter errors, as written in case files.
const (
	NameBufferTooSmall   = "buffer_too_small"
	NameWidthOverflow    = "width_overflow"
	NameInvalidWidth     = "invalid_width"
	NameInvalidBitIndex  = "invalid_bit_index"
	NameInvalidStart     = "invalid_start"
	NameInvalidOperation = "invalid_operation"
	NameInputTooLarge    = "input_too_large"
)

var errorNames = []struct {
	name string
	err  error
}{
	{NameBufferTooSmall, bits.ErrBufferTooSmall},
	{NameWidthOverflow, bits.ErrWidthOverflow},
	{NameInvalidWidth, bits.ErrInvalidWidth},
	{NameInvalidBitIndex, bits.ErrInvalidBitIndex},
	{NameInvalidStart, bits.ErrInvalidStart},
	{NameInvalidOperation, bits.ErrInvalidOperation},
	{NameInputTooLarge, bits.ErrInputTooLarge},
}

// ErrorName returns the stable name of the formatter error wrapped by err,
// "" for nil, and "error" for anything else.
func ErrorName(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorNames {
		if errors.Is(err, e.err) {
			return e.name
		}
	}
	return "error"
}

func knownErrorName(name string) bool {
	for _, e := range errorNames {
		if e.name == name {
			return true
		}
	}
	return false
}
