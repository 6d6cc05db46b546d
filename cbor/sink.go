package cbor

import "encoding/binary"

// sink is the destination of an encode pass. The encoder emits every
// initial byte, big-endian argument, and payload through it, so the
// same traversal serves both the size pass and the write pass.
type sink interface {
	emitByte(b byte)
	emitUint16(v uint16)
	emitUint32(v uint32)
	emitUint64(v uint64)
	emitRaw(p []byte)
	emitString(s string)
}

// countSink measures the encoding without producing bytes. Each emit
// adds the width of the primitive, so the total equals the byte count
// the buffer sink would append.
type countSink struct {
	n int
}

func (c *countSink) emitByte(byte)       { c.n++ }
func (c *countSink) emitUint16(uint16)   { c.n += 2 }
func (c *countSink) emitUint32(uint32)   { c.n += 4 }
func (c *countSink) emitUint64(uint64)   { c.n += 8 }
func (c *countSink) emitRaw(p []byte)    { c.n += len(p) }
func (c *countSink) emitString(s string) { c.n += len(s) }

// bufSink appends the encoding to a ByteBuffer in network byte order.
type bufSink struct {
	bb *ByteBuffer
}

func (s bufSink) emitByte(b byte)     { s.bb.AppendByte(b) }
func (s bufSink) emitUint16(v uint16) { binary.BigEndian.PutUint16(s.bb.Extend(2), v) }
func (s bufSink) emitUint32(v uint32) { binary.BigEndian.PutUint32(s.bb.Extend(4), v) }
func (s bufSink) emitUint64(v uint64) { binary.BigEndian.PutUint64(s.bb.Extend(8), v) }
func (s bufSink) emitRaw(p []byte)    { s.bb.Append(p) }
func (s bufSink) emitString(v string) { s.bb.AppendString(v) }
