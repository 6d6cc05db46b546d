// Package cbor implements the RFC 7049 wire codec for document trees.
//
// The package provides four entry points:
//   - CalcSize() computes the exact encoded size of a document.
//   - Encode()/EncodeTo()/Append() serialize a document, choosing the
//     shortest argument width for every item.
//   - Decode()/Decoder decode one CBOR item into a document tree,
//     accepting both definite and indefinite-length forms.
//   - Valid()/ValidItem() check well-formedness without building a tree.
//
// The encoder is written once against a sink abstraction and
// instantiated with a counting sink (size pass) and a byte-buffer sink
// (write pass), so the size calculator and the encoder cannot drift.
package cbor

import "unicode/utf8"

// CBOR major types (3 bits)
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // float, simple values, break
)

// Additional info values (5 bits)
const (
	// 0-23: literal value
	addInfoDirect     = 23 // max direct value
	addInfoUint8      = 24 // 1-byte uint8 follows
	addInfoUint16     = 25 // 2-byte uint16 follows
	addInfoUint32     = 26 // 4-byte uint32 follows
	addInfoUint64     = 27 // 8-byte uint64 follows
	addInfoIndefinite = 31 // indefinite length (for bytes, text, array, map)
)

// Simple values in major type 7
const (
	simpleFalse   = 20
	simpleTrue    = 21
	simpleNull    = 22
	simpleFloat16 = 25
	simpleFloat32 = 26
	simpleFloat64 = 27
	simpleBreak   = 31
)

// DefaultMaxDepth is the decoder's container recursion cap. It bounds
// stack use on adversarial input; Decoder.SetMaxDepth overrides it.
const DefaultMaxDepth = 1024

// makeByte creates a CBOR initial byte from major type and additional info
func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

// getMajorType extracts the major type from a CBOR initial byte
func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

// getAddInfo extracts the additional info from a CBOR initial byte
func getAddInfo(b byte) uint8 {
	return b & 0x1f
}

// UTF-8 validation hooks. Overridable so architecture-specific
// implementations can be swapped in via build tags.
var (
	isUTF8Valid       = func(b []byte) bool { return utf8.Valid(b) }
	isUTF8ValidString = func(s string) bool { return utf8.ValidString(s) }
)
