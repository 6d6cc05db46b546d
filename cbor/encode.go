package cbor

import (
	"math"

	"github.com/harborlabs/cbordoc/document"
)

// CalcSize returns the exact number of bytes Encode produces for v.
// It runs the encoder traversal against a counting sink, so the result
// is the encoder's byte count by construction, not an estimate.
func CalcSize(v *document.Value) int {
	var c countSink
	// UTF-8 failures do not change the emitted size of preceding
	// items; the write pass reports them.
	_ = encodeValue(&c, v)
	return c.n
}

// Encode serializes v to CBOR. The output buffer is reserved once at
// the exact size computed by CalcSize, then filled in a second pass.
func Encode(v *document.Value) ([]byte, error) {
	bb := GetMinSize(CalcSize(v))
	defer PutByteBuffer(bb)
	if err := encodeValue(bufSink{bb}, v); err != nil {
		return nil, err
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out, nil
}

// EncodeTo appends the encoding of v to bb. On error the buffer holds
// a partial encoding and must be discarded by the caller.
func EncodeTo(bb *ByteBuffer, v *document.Value) error {
	bb.Ensure(CalcSize(v))
	return encodeValue(bufSink{bb}, v)
}

// Append appends the encoding of v to b and returns the extended
// slice. On error the original slice is returned unchanged.
func Append(b []byte, v *document.Value) ([]byte, error) {
	bb := &ByteBuffer{b: b}
	bb.Ensure(CalcSize(v))
	if err := encodeValue(bufSink{bb}, v); err != nil {
		return b, err
	}
	return bb.b, nil
}

// emitHeader emits the initial byte for the given major type and, when
// the argument exceeds 23, the shortest big-endian argument that holds
// it.
func emitHeader(s sink, majorType uint8, u uint64) {
	switch {
	case u <= addInfoDirect:
		s.emitByte(makeByte(majorType, uint8(u)))
	case u <= math.MaxUint8:
		s.emitByte(makeByte(majorType, addInfoUint8))
		s.emitByte(uint8(u))
	case u <= math.MaxUint16:
		s.emitByte(makeByte(majorType, addInfoUint16))
		s.emitUint16(uint16(u))
	case u <= math.MaxUint32:
		s.emitByte(makeByte(majorType, addInfoUint32))
		s.emitUint32(uint32(u))
	default:
		s.emitByte(makeByte(majorType, addInfoUint64))
		s.emitUint64(u)
	}
}

func emitText(s sink, t string) error {
	if !isUTF8ValidString(t) {
		return ErrBadUTF8
	}
	emitHeader(s, majorTypeText, uint64(len(t)))
	s.emitString(t)
	return nil
}

// encodeValue walks the document and emits one CBOR item per node.
// Text strings are validated before any byte of the item is emitted.
func encodeValue(s sink, v *document.Value) error {
	switch v.Kind() {
	case document.Null:
		s.emitByte(makeByte(majorTypeSimple, simpleNull))

	case document.Bool:
		if v.Bool() {
			s.emitByte(makeByte(majorTypeSimple, simpleTrue))
		} else {
			s.emitByte(makeByte(majorTypeSimple, simpleFalse))
		}

	case document.Uint:
		emitHeader(s, majorTypeUint, v.Uint())

	case document.Int:
		// Negative values encode as -1-n with unsigned argument n;
		// non-negative values use the unsigned major type.
		if i := v.Int(); i >= 0 {
			emitHeader(s, majorTypeUint, uint64(i))
		} else {
			emitHeader(s, majorTypeNegInt, uint64(-1-i))
		}

	case document.Double:
		// Always 8-byte IEEE 754; half and single precision are never emitted.
		s.emitByte(makeByte(majorTypeSimple, simpleFloat64))
		s.emitUint64(math.Float64bits(v.Double()))

	case document.Text:
		return emitText(s, v.Text())

	case document.Bytes:
		p := v.Bytes()
		emitHeader(s, majorTypeBytes, uint64(len(p)))
		s.emitRaw(p)

	case document.Array:
		items := v.Items()
		emitHeader(s, majorTypeArray, uint64(len(items)))
		for _, it := range items {
			if err := encodeValue(s, it); err != nil {
				return err
			}
		}

	case document.Object:
		members := v.Members()
		emitHeader(s, majorTypeMap, uint64(len(members)))
		for i := range members {
			if err := emitText(s, members[i].Key); err != nil {
				return err
			}
			if err := encodeValue(s, members[i].Value); err != nil {
				return err
			}
		}
	}
	return nil
}
