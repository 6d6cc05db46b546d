package cbor

// Packed owns an encoded CBOR buffer and hands out read-only views of
// it. The backing bytes never move, so a Decoder borrowed from a
// Packed stays valid for as long as the Packed is alive.
type Packed struct {
	data []byte
}

// NewPacked adopts b as the owned buffer. The caller must not modify
// b afterwards; use NewPackedCopy to keep ownership of the slice.
func NewPacked(b []byte) *Packed { return &Packed{data: b} }

// NewPackedCopy copies b into a freshly owned buffer.
func NewPackedCopy(b []byte) *Packed {
	out := make([]byte, len(b))
	copy(out, b)
	return &Packed{data: out}
}

// Bytes returns the owned buffer.
func (p *Packed) Bytes() []byte { return p.data }

// Len returns the buffer length.
func (p *Packed) Len() int { return len(p.data) }

// Decoder returns a Decoder borrowing the owned buffer. The Packed
// must outlive the Decoder.
func (p *Packed) Decoder() *Decoder { return NewDecoder(p.data) }
