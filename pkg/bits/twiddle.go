package bits

import (
	"fmt"
	"strings"
)

// Operation is a single-bit transformation.
type Operation uint8

const (
	// Clear forces the bit to 0.
	Clear Operation = iota
	// Set forces the bit to 1.
	Set
	// Toggle flips the bit.
	Toggle
)

func (op Operation) String() string {
	switch op {
	case Clear:
		return "clear"
	case Set:
		return "set"
	case Toggle:
		return "toggle"
	default:
		return fmt.Sprintf("Operation(%d)", uint8(op))
	}
}

// ParseOperation accepts "clear", "set" or "toggle" in any case.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clear":
		return Clear, nil
	case "set":
		return Set, nil
	case "toggle":
		return Toggle, nil
	}
	return 0, fmt.Errorf("operation %q: %w", s, ErrInvalidOperation)
}

// TwiddleBit returns v with bit (0..31) cleared, set or toggled according to
// op. All other bits are unchanged.
func TwiddleBit(v uint32, bit int, op Operation) (uint32, error) {
	if bit < 0 || bit >= maxWidth {
		return 0, fmt.Errorf("bit %d: %w", bit, ErrInvalidBitIndex)
	}
	mask := uint32(1) << bit
	switch op {
	case Clear:
		return v &^ mask, nil
	case Set:
		return v | mask, nil
	case Toggle:
		return v ^ mask, nil
	}
	return 0, fmt.Errorf("%v on bit %d: %w", op, bit, ErrInvalidOperation)
}
