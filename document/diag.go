package document

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// String renders the value in RFC diagnostic notation:
// byte strings as h'..', text quoted, arrays and objects bracketed.
func (v *Value) String() string {
	var sb strings.Builder
	diagValue(&sb, v)
	return sb.String()
}

func diagValue(sb *strings.Builder, v *Value) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		if v.bits != 0 {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Uint:
		sb.WriteString(strconv.FormatUint(v.bits, 10))
	case Int:
		sb.WriteString(strconv.FormatInt(int64(v.bits), 10))
	case Double:
		diagFloat(sb, math.Float64frombits(v.bits))
	case Text:
		sb.WriteString(strconv.Quote(v.str))
	case Bytes:
		sb.WriteString("h'")
		sb.WriteString(hex.EncodeToString(v.bin))
		sb.WriteString("'")
	case Array:
		sb.WriteString("[")
		for i, it := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			diagValue(sb, it)
		}
		sb.WriteString("]")
	case Object:
		sb.WriteString("{")
		for i := range v.mem {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(v.mem[i].Key))
			sb.WriteString(": ")
			diagValue(sb, v.mem[i].Value)
		}
		sb.WriteString("}")
	}
}

func diagFloat(sb *strings.Builder, f float64) {
	switch {
	case math.IsNaN(f):
		sb.WriteString("NaN")
	case math.IsInf(f, 1):
		sb.WriteString("Infinity")
	case math.IsInf(f, -1):
		sb.WriteString("-Infinity")
	default:
		s := strconv.FormatFloat(f, 'g', -1, 64)
		sb.WriteString(s)
		// Integral floats still read as floats in diagnostic notation.
		if !strings.ContainsAny(s, ".eE") {
			sb.WriteString(".0")
		}
	}
}
