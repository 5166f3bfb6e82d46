package bits

// Buffer is fixed-capacity output storage owned by the caller. Formatters
// write their text followed by a NUL terminator and never resize it.
//
// The zero value is a buffer with no capacity.
type Buffer struct {
	data []byte
	n    int
}

// NewBuffer allocates a buffer with the given capacity in bytes.
// Negative capacities are treated as zero.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]byte, capacity)}
}

// WrapBuffer uses b (up to len(b)) as the buffer's storage. The buffer
// starts empty; b's contents are overwritten by the next write.
func WrapBuffer(b []byte) *Buffer {
	out := &Buffer{data: b}
	out.Reset()
	return out
}

// Cap returns the declared capacity, terminator included.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Len returns the length of the current text, terminator excluded.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.n
}

// Bytes returns the current text. The slice aliases the buffer's storage.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data[:b.n:b.n]
}

// String returns a copy of the current text.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.data[:b.n])
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	if b == nil {
		return
	}
	b.n = 0
	if len(b.data) > 0 {
		b.data[0] = 0
	}
}

// fits reports whether n bytes of text plus the terminator fit.
func (b *Buffer) fits(n int) bool {
	return n < b.Cap()
}

// commit marks the first n bytes as the buffer's text and terminates them.
func (b *Buffer) commit(n int) {
	b.n = n
	b.data[n] = 0
}
