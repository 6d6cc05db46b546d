// Package document defines the in-memory value tree the cbor package
// encodes and decodes: a tagged union over the JSON-like kinds plus a
// distinct byte-string kind.
//
// Values are built either by a decoder or by the host through the
// NewXxx constructors, and are treated as immutable by the codec.
// Typed accessors panic on a kind mismatch; callers are expected to
// dispatch on Kind first.
package document

import (
	"bytes"
	"math"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

// Value kinds.
const (
	Null Kind = iota
	Bool
	Uint // unsigned 64-bit
	Int  // signed 64-bit, may be negative
	Double
	Text
	Bytes
	Array
	Object
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Uint:
		return "uint"
	case Int:
		return "int"
	case Double:
		return "double"
	case Text:
		return "text"
	case Bytes:
		return "bytes"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "<invalid>"
	}
}

// Member is one key/value entry of an Object. Keys keep their
// insertion order and duplicates are permitted.
type Member struct {
	Key   string
	Value *Value
}

// Value is a node of the document tree. The zero value is Null.
//
// Scalar payloads (bool, uint, int, double) share a single uint64 bit
// pattern slot; the kind tag selects the interpretation.
type Value struct {
	kind Kind
	bits uint64
	str  string
	bin  []byte
	arr  []*Value
	mem  []Member
}

// NewNull constructs a Null value.
func NewNull() *Value { return &Value{kind: Null} }

// NewBool constructs a Bool value.
func NewBool(v bool) *Value {
	n := &Value{kind: Bool}
	if v {
		n.bits = 1
	}
	return n
}

// NewUint constructs a Uint value.
func NewUint(u uint64) *Value { return &Value{kind: Uint, bits: u} }

// NewInt constructs an Int value.
func NewInt(i int64) *Value { return &Value{kind: Int, bits: uint64(i)} }

// NewDouble constructs a Double value. NaN and infinities are allowed.
func NewDouble(f float64) *Value { return &Value{kind: Double, bits: math.Float64bits(f)} }

// NewText constructs a Text value. The string is not validated here;
// the encoder rejects ill-formed UTF-8 with its BadUTF8 error, and
// the decoder only ever produces validated text.
func NewText(s string) *Value { return &Value{kind: Text, str: s} }

// NewBytes constructs a Bytes value. The slice is adopted, not copied.
func NewBytes(b []byte) *Value { return &Value{kind: Bytes, bin: b} }

// NewArray constructs an Array value holding the given items.
func NewArray(items ...*Value) *Value { return &Value{kind: Array, arr: items} }

// NewObject constructs an empty Object value.
func NewObject() *Value { return &Value{kind: Object} }

// Kind returns the variant tag.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) check(want Kind) {
	if v.kind != want {
		panic("document: " + want.String() + " accessor on " + v.kind.String() + " value")
	}
}

// Bool returns the boolean payload.
func (v *Value) Bool() bool {
	v.check(Bool)
	return v.bits != 0
}

// Uint returns the unsigned integer payload.
func (v *Value) Uint() uint64 {
	v.check(Uint)
	return v.bits
}

// Int returns the signed integer payload.
func (v *Value) Int() int64 {
	v.check(Int)
	return int64(v.bits)
}

// Double returns the float payload.
func (v *Value) Double() float64 {
	v.check(Double)
	return math.Float64frombits(v.bits)
}

// Text returns the text payload.
func (v *Value) Text() string {
	v.check(Text)
	return v.str
}

// Bytes returns the byte-string payload.
func (v *Value) Bytes() []byte {
	v.check(Bytes)
	return v.bin
}

// Items returns the elements of an Array in order.
func (v *Value) Items() []*Value {
	v.check(Array)
	return v.arr
}

// Members returns the entries of an Object in insertion order.
func (v *Value) Members() []Member {
	v.check(Object)
	return v.mem
}

// Len returns the element count of an Array or Object.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.mem)
	}
	panic("document: Len on " + v.kind.String() + " value")
}

// Append adds an item to the end of an Array.
func (v *Value) Append(item *Value) {
	v.check(Array)
	v.arr = append(v.arr, item)
}

// Set appends a key/value entry to an Object. Insertion order is
// preserved and an existing key is not replaced; the wire format
// permits duplicates and so does the model.
func (v *Value) Set(key string, val *Value) {
	v.check(Object)
	v.mem = append(v.mem, Member{Key: key, Value: val})
}

// Equal reports deep equality of two values. Doubles compare by bit
// pattern, so NaN equals NaN and -0 differs from +0. Uint and Int are
// distinct kinds and never compare equal to each other.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool, Uint, Int, Double:
		return a.bits == b.bits
	case Text:
		return a.str == b.str
	case Bytes:
		return bytes.Equal(a.bin, b.bin)
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.mem) != len(b.mem) {
			return false
		}
		for i := range a.mem {
			if a.mem[i].Key != b.mem[i].Key || !Equal(a.mem[i].Value, b.mem[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
