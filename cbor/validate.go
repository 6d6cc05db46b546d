package cbor

import "math"

// Valid checks that b consists entirely of well-formed items the
// decoder would accept, without building a document tree. It is the
// cheap bounded-work pre-check for callers that want to reject
// malformed input before allocating.
func Valid(b []byte) error {
	d := NewDecoder(b)
	for d.pos < len(d.buf) {
		if err := d.skipItem(0); err != nil {
			return err
		}
	}
	return nil
}

// ValidItem checks the first item in b and returns the bytes that
// follow it. On error the original slice is returned.
func ValidItem(b []byte) (rest []byte, err error) {
	d := NewDecoder(b)
	if err := d.skipItem(0); err != nil {
		return b, err
	}
	return d.Remaining(), nil
}

// skipItem advances past one item, applying the same structural,
// UTF-8, key-kind, and depth rules as decodeValue.
func (d *Decoder) skipItem(depth int) error {
	if depth > d.maxDepth {
		return posErr(d.pos, ErrTooDeep)
	}
	start := d.pos
	if start >= len(d.buf) {
		return posErr(start, ErrTruncated)
	}
	lead := d.buf[start]
	d.pos++
	major := getMajorType(lead)
	add := getAddInfo(lead)

	switch major {
	case majorTypeUint:
		_, err := d.readArg(add, start)
		return err

	case majorTypeNegInt:
		u, err := d.readArg(add, start)
		if err != nil {
			return err
		}
		if u > math.MaxInt64 {
			return posErr(start, ErrOverflow)
		}
		return nil

	case majorTypeBytes:
		if add == addInfoIndefinite {
			return d.skipChunks(majorTypeBytes)
		}
		_, _, err := d.readPayload(add, start)
		return err

	case majorTypeText:
		if add == addInfoIndefinite {
			// Chunk boundaries may split a code point, so checking each
			// chunk alone would be wrong; decode does the joined check.
			// Here the chunks are concatenated the same way.
			var out []byte
			for {
				done, err := d.breakNext()
				if err != nil {
					return err
				}
				if done {
					if !isUTF8Valid(out) {
						return posErr(start, ErrBadUTF8)
					}
					return nil
				}
				p, err := d.readChunk(majorTypeText)
				if err != nil {
					return err
				}
				out = append(out, p...)
			}
		}
		p, off, err := d.readPayload(add, start)
		if err != nil {
			return err
		}
		if !isUTF8Valid(p) {
			return posErr(off, ErrBadUTF8)
		}
		return nil

	case majorTypeArray:
		if add == addInfoIndefinite {
			for {
				done, err := d.breakNext()
				if err != nil {
					return err
				}
				if done {
					return nil
				}
				if err := d.skipItem(depth + 1); err != nil {
					return err
				}
			}
		}
		n, err := d.readArg(add, start)
		if err != nil {
			return err
		}
		for i := uint64(0); i < n; i++ {
			if err := d.skipItem(depth + 1); err != nil {
				return err
			}
		}
		return nil

	case majorTypeMap:
		if add == addInfoIndefinite {
			for {
				done, err := d.breakNext()
				if err != nil {
					return err
				}
				if done {
					return nil
				}
				if err := d.skipMember(depth); err != nil {
					return err
				}
			}
		}
		n, err := d.readArg(add, start)
		if err != nil {
			return err
		}
		for i := uint64(0); i < n; i++ {
			if err := d.skipMember(depth); err != nil {
				return err
			}
		}
		return nil

	case majorTypeTag:
		return posErr(start, ErrUnsupported)

	case majorTypeSimple:
		switch add {
		case simpleFalse, simpleTrue, simpleNull:
			return nil
		case simpleFloat16:
			return d.skipFixed(2)
		case simpleFloat32:
			return d.skipFixed(4)
		case simpleFloat64:
			return d.skipFixed(8)
		case simpleBreak:
			return posErr(start, ErrUnexpectedBreak)
		}
	}
	return posErr(start, ErrUnsupported)
}

func (d *Decoder) skipMember(depth int) error {
	keyAt := d.pos
	if keyAt >= len(d.buf) {
		return posErr(keyAt, ErrTruncated)
	}
	keyMajor := getMajorType(d.buf[keyAt])
	if err := d.skipItem(depth + 1); err != nil {
		return err
	}
	// Matches decodeMember: a malformed key reports its own error, a
	// well-formed non-text key reports BadKey.
	if keyMajor != majorTypeText {
		return posErr(keyAt, ErrBadKey)
	}
	return d.skipItem(depth + 1)
}

func (d *Decoder) skipChunks(major uint8) error {
	for {
		done, err := d.breakNext()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if _, err := d.readChunk(major); err != nil {
			return err
		}
	}
}

func (d *Decoder) skipFixed(n int) error {
	if len(d.buf)-d.pos < n {
		return posErr(d.pos, ErrTruncated)
	}
	d.pos += n
	return nil
}
