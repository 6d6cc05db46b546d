package cbor

import "sync"

// ByteBuffer is a pooled, growable byte slice used as the encoder's
// output. Use Ensure(n) to grow capacity up-front when the final size
// is known; Extend(n) hands out a slice of the freshly appended region
// for direct big-endian writes.
type ByteBuffer struct {
	b []byte
}

var bbPool = sync.Pool{New: func() any { return &ByteBuffer{b: make([]byte, 0, 1024)} }}

// GetByteBuffer obtains a pooled ByteBuffer with length zero.
func GetByteBuffer() *ByteBuffer {
	bb := bbPool.Get().(*ByteBuffer)
	bb.Reset()
	return bb
}

// GetMinSize obtains a pooled ByteBuffer with capacity for at least
// size bytes.
func GetMinSize(size int) *ByteBuffer {
	bb := GetByteBuffer()
	if size > 0 {
		bb.Ensure(size)
	}
	return bb
}

// PutByteBuffer returns the buffer to the pool after resetting its length.
func PutByteBuffer(bb *ByteBuffer) { bb.Reset(); bbPool.Put(bb) }

// Bytes returns the underlying bytes.
func (bb *ByteBuffer) Bytes() []byte { return bb.b }

// Len returns the current length.
func (bb *ByteBuffer) Len() int { return len(bb.b) }

// Reset resets the length to zero; capacity is unchanged.
func (bb *ByteBuffer) Reset() { bb.b = bb.b[:0] }

// Ensure ensures there is room for at least n more bytes without
// reallocation.
func (bb *ByteBuffer) Ensure(n int) {
	need := len(bb.b) + n
	if cap(bb.b) >= need {
		return
	}
	c := cap(bb.b)
	if c == 0 {
		c = 1024
	}
	for c < need {
		c <<= 1
	}
	nb := make([]byte, len(bb.b), c)
	copy(nb, bb.b)
	bb.b = nb
}

// Extend grows the buffer by n bytes and returns a slice to the newly
// appended region for direct writes.
func (bb *ByteBuffer) Extend(n int) []byte {
	old := len(bb.b)
	bb.Ensure(n)
	bb.b = bb.b[:old+n]
	return bb.b[old:]
}

// AppendByte appends a single byte.
func (bb *ByteBuffer) AppendByte(c byte) { bb.b = append(bb.b, c) }

// Append appends a byte slice.
func (bb *ByteBuffer) Append(p []byte) { bb.b = append(bb.b, p...) }

// AppendString appends the raw bytes of a string.
func (bb *ByteBuffer) AppendString(s string) { bb.b = append(bb.b, s...) }
