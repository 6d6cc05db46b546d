package cbor

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"

	"github.com/harborlabs/cbordoc/document"
)

var be = binary.BigEndian

// Decoder reads one document tree per Decode call from an in-memory
// buffer, advancing an internal position. Both definite and
// indefinite-length containers are accepted; semantic tags are not.
type Decoder struct {
	buf      []byte
	pos      int
	maxDepth int
}

// NewDecoder constructs a Decoder over the provided buffer. The buffer
// is borrowed and must stay alive and unmodified while the Decoder is
// in use.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth configures the container recursion cap. Values below one
// are ignored.
func (d *Decoder) SetMaxDepth(n int) {
	if n > 0 {
		d.maxDepth = n
	}
}

// Remaining returns the unread portion of the buffer.
func (d *Decoder) Remaining() []byte { return d.buf[d.pos:] }

// Decode decodes the CBOR item at the current position into a freshly
// owned document tree. Trailing bytes are left unread.
func (d *Decoder) Decode() (*document.Value, error) {
	return d.decodeValue(0)
}

// Decode decodes the first CBOR item in b. Bytes after the item are
// ignored; use a Decoder to consume a sequence.
func Decode(b []byte) (*document.Value, error) {
	return NewDecoder(b).Decode()
}

// readArg reads the argument selected by the additional info of an
// already-consumed initial byte. start is the item's offset, used for
// reserved additional-info errors.
func (d *Decoder) readArg(add uint8, start int) (uint64, error) {
	switch {
	case add <= addInfoDirect:
		return uint64(add), nil
	case add == addInfoUint8:
		if len(d.buf)-d.pos < 1 {
			return 0, posErr(d.pos, ErrTruncated)
		}
		v := uint64(d.buf[d.pos])
		d.pos++
		return v, nil
	case add == addInfoUint16:
		if len(d.buf)-d.pos < 2 {
			return 0, posErr(d.pos, ErrTruncated)
		}
		v := uint64(be.Uint16(d.buf[d.pos:]))
		d.pos += 2
		return v, nil
	case add == addInfoUint32:
		if len(d.buf)-d.pos < 4 {
			return 0, posErr(d.pos, ErrTruncated)
		}
		v := uint64(be.Uint32(d.buf[d.pos:]))
		d.pos += 4
		return v, nil
	case add == addInfoUint64:
		if len(d.buf)-d.pos < 8 {
			return 0, posErr(d.pos, ErrTruncated)
		}
		v := be.Uint64(d.buf[d.pos:])
		d.pos += 8
		return v, nil
	default:
		// Reserved additional info 28-30, or indefinite where the
		// caller did not allow it.
		return 0, posErr(start, ErrUnsupported)
	}
}

// readPayload reads a length argument followed by that many payload
// bytes, returning the payload slice and its offset.
func (d *Decoder) readPayload(add uint8, start int) ([]byte, int, error) {
	sz, err := d.readArg(add, start)
	if err != nil {
		return nil, 0, err
	}
	if sz > uint64(len(d.buf)-d.pos) {
		return nil, 0, posErr(d.pos, ErrTruncated)
	}
	off := d.pos
	d.pos += int(sz)
	return d.buf[off : off+int(sz)], off, nil
}

// breakNext reports whether the next byte is the break marker (0xff)
// and consumes it if so.
func (d *Decoder) breakNext() (bool, error) {
	if d.pos >= len(d.buf) {
		return false, posErr(d.pos, ErrTruncated)
	}
	if d.buf[d.pos] == makeByte(majorTypeSimple, simpleBreak) {
		d.pos++
		return true, nil
	}
	return false, nil
}

func (d *Decoder) decodeValue(depth int) (*document.Value, error) {
	if depth > d.maxDepth {
		return nil, posErr(d.pos, ErrTooDeep)
	}
	start := d.pos
	if start >= len(d.buf) {
		return nil, posErr(start, ErrTruncated)
	}
	lead := d.buf[start]
	d.pos++
	major := getMajorType(lead)
	add := getAddInfo(lead)

	switch major {
	case majorTypeUint:
		u, err := d.readArg(add, start)
		if err != nil {
			return nil, err
		}
		return document.NewUint(u), nil

	case majorTypeNegInt:
		u, err := d.readArg(add, start)
		if err != nil {
			return nil, err
		}
		if u > math.MaxInt64 {
			return nil, posErr(start, ErrOverflow)
		}
		return document.NewInt(-1 - int64(u)), nil

	case majorTypeBytes:
		if add == addInfoIndefinite {
			return d.decodeChunkedBytes()
		}
		p, _, err := d.readPayload(add, start)
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(p))
		copy(out, p)
		return document.NewBytes(out), nil

	case majorTypeText:
		if add == addInfoIndefinite {
			return d.decodeChunkedText(start)
		}
		p, off, err := d.readPayload(add, start)
		if err != nil {
			return nil, err
		}
		if !isUTF8Valid(p) {
			return nil, posErr(off, ErrBadUTF8)
		}
		return document.NewText(string(p)), nil

	case majorTypeArray:
		if add == addInfoIndefinite {
			arr := document.NewArray()
			for {
				done, err := d.breakNext()
				if err != nil {
					return nil, err
				}
				if done {
					return arr, nil
				}
				it, err := d.decodeValue(depth + 1)
				if err != nil {
					return nil, err
				}
				arr.Append(it)
			}
		}
		n, err := d.readArg(add, start)
		if err != nil {
			return nil, err
		}
		// Every item takes at least one byte; cap the reserve at the
		// remaining input so a forged header cannot force a huge alloc.
		hint := n
		if r := uint64(len(d.buf) - d.pos); hint > r {
			hint = r
		}
		items := make([]*document.Value, 0, hint)
		for i := uint64(0); i < n; i++ {
			it, err := d.decodeValue(depth + 1)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return document.NewArray(items...), nil

	case majorTypeMap:
		if add == addInfoIndefinite {
			obj := document.NewObject()
			for {
				done, err := d.breakNext()
				if err != nil {
					return nil, err
				}
				if done {
					return obj, nil
				}
				if err := d.decodeMember(obj, depth); err != nil {
					return nil, err
				}
			}
		}
		n, err := d.readArg(add, start)
		if err != nil {
			return nil, err
		}
		obj := document.NewObject()
		for i := uint64(0); i < n; i++ {
			if err := d.decodeMember(obj, depth); err != nil {
				return nil, err
			}
		}
		return obj, nil

	case majorTypeTag:
		return nil, posErr(start, ErrUnsupported)

	case majorTypeSimple:
		switch add {
		case simpleFalse:
			return document.NewBool(false), nil
		case simpleTrue:
			return document.NewBool(true), nil
		case simpleNull:
			return document.NewNull(), nil
		case simpleFloat16:
			if len(d.buf)-d.pos < 2 {
				return nil, posErr(d.pos, ErrTruncated)
			}
			f := float16.Frombits(be.Uint16(d.buf[d.pos:])).Float32()
			d.pos += 2
			return document.NewDouble(float64(f)), nil
		case simpleFloat32:
			if len(d.buf)-d.pos < 4 {
				return nil, posErr(d.pos, ErrTruncated)
			}
			f := math.Float32frombits(be.Uint32(d.buf[d.pos:]))
			d.pos += 4
			return document.NewDouble(float64(f)), nil
		case simpleFloat64:
			if len(d.buf)-d.pos < 8 {
				return nil, posErr(d.pos, ErrTruncated)
			}
			f := math.Float64frombits(be.Uint64(d.buf[d.pos:]))
			d.pos += 8
			return document.NewDouble(f), nil
		case simpleBreak:
			return nil, posErr(start, ErrUnexpectedBreak)
		}
	}
	return nil, posErr(start, ErrUnsupported)
}

// decodeMember decodes one key/value pair into obj. Keys must decode
// to text strings.
func (d *Decoder) decodeMember(obj *document.Value, depth int) error {
	keyAt := d.pos
	key, err := d.decodeValue(depth + 1)
	if err != nil {
		return err
	}
	if key.Kind() != document.Text {
		return posErr(keyAt, ErrBadKey)
	}
	val, err := d.decodeValue(depth + 1)
	if err != nil {
		return err
	}
	obj.Set(key.Text(), val)
	return nil
}

// decodeChunkedBytes concatenates the definite-length chunks of an
// indefinite byte string up to the break marker.
func (d *Decoder) decodeChunkedBytes() (*document.Value, error) {
	var out []byte
	for {
		done, err := d.breakNext()
		if err != nil {
			return nil, err
		}
		if done {
			return document.NewBytes(out), nil
		}
		p, err := d.readChunk(majorTypeBytes)
		if err != nil {
			return nil, err
		}
		out = append(out, p...)
	}
}

// decodeChunkedText concatenates text chunks up to the break marker
// and validates the joined string. Validation runs on the
// concatenation so a code point split across chunk boundaries is
// still accepted.
func (d *Decoder) decodeChunkedText(start int) (*document.Value, error) {
	var out []byte
	for {
		done, err := d.breakNext()
		if err != nil {
			return nil, err
		}
		if done {
			if !isUTF8Valid(out) {
				return nil, posErr(start, ErrBadUTF8)
			}
			return document.NewText(string(out)), nil
		}
		p, err := d.readChunk(majorTypeText)
		if err != nil {
			return nil, err
		}
		out = append(out, p...)
	}
}

// readChunk reads one definite-length string item of the given major
// type, as required inside indefinite-length strings.
func (d *Decoder) readChunk(major uint8) ([]byte, error) {
	at := d.pos
	lead := d.buf[at]
	if getMajorType(lead) != major || getAddInfo(lead) == addInfoIndefinite {
		return nil, posErr(at, ErrUnsupported)
	}
	d.pos++
	p, _, err := d.readPayload(getAddInfo(lead), at)
	return p, err
}
