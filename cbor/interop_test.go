package cbor

import (
	"math"
	"reflect"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"

	"github.com/harborlabs/cbordoc/document"
)

// TestInteropEncodeAgainstFxamacker feeds our encodings to an
// independent CBOR implementation and checks the decoded values.
func TestInteropEncodeAgainstFxamacker(t *testing.T) {
	doc := document.NewObject()
	doc.Set("name", document.NewText("Alice"))
	doc.Set("age", document.NewUint(42))
	doc.Set("balance", document.NewInt(-150))
	doc.Set("score", document.NewDouble(1.5))
	doc.Set("tags", document.NewArray(document.NewText("a"), document.NewText("b")))
	doc.Set("blob", document.NewBytes([]byte{1, 2, 3}))
	doc.Set("active", document.NewBool(true))
	doc.Set("ref", document.NewNull())

	enc, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	var got map[string]any
	if err := fxcbor.Unmarshal(enc, &got); err != nil {
		t.Fatalf("fxamacker Unmarshal error: %v", err)
	}
	want := map[string]any{
		"name":    "Alice",
		"age":     uint64(42),
		"balance": int64(-150),
		"score":   1.5,
		"tags":    []any{"a", "b"},
		"blob":    []byte{1, 2, 3},
		"active":  true,
		"ref":     nil,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fxamacker disagreement:\n got: %#v\nwant: %#v", got, want)
	}
}

// TestInteropDecodeFromFxamacker decodes fxamacker-produced encodings.
// Floats are compared by value since all wire widths decode to Double.
func TestInteropDecodeFromFxamacker(t *testing.T) {
	enc, err := fxcbor.Marshal([]any{
		uint64(1), "x", []byte{9}, int64(-5), 2.5, true, nil,
	})
	if err != nil {
		t.Fatalf("fxamacker Marshal error: %v", err)
	}

	doc, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	items := doc.Items()
	if len(items) != 7 {
		t.Fatalf("expected 7 items, got %d", len(items))
	}
	if items[0].Uint() != 1 {
		t.Fatalf("item 0: %v", items[0])
	}
	if items[1].Text() != "x" {
		t.Fatalf("item 1: %v", items[1])
	}
	if got := items[2].Bytes(); len(got) != 1 || got[0] != 9 {
		t.Fatalf("item 2: %v", items[2])
	}
	if items[3].Int() != -5 {
		t.Fatalf("item 3: %v", items[3])
	}
	if items[4].Kind() != document.Double || items[4].Double() != 2.5 {
		t.Fatalf("item 4: %v", items[4])
	}
	if items[5].Bool() != true {
		t.Fatalf("item 5: %v", items[5])
	}
	if items[6].Kind() != document.Null {
		t.Fatalf("item 6: %v", items[6])
	}
}

// TestInteropSpecialFloats cross-checks NaN and infinities both ways.
func TestInteropSpecialFloats(t *testing.T) {
	enc, err := Encode(document.NewDouble(math.Inf(-1)))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	var f float64
	if err := fxcbor.Unmarshal(enc, &f); err != nil {
		t.Fatalf("fxamacker Unmarshal error: %v", err)
	}
	if !math.IsInf(f, -1) {
		t.Fatalf("expected -Inf, got %v", f)
	}

	enc, err = fxcbor.Marshal(math.NaN())
	if err != nil {
		t.Fatalf("fxamacker Marshal error: %v", err)
	}
	doc, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !math.IsNaN(doc.Double()) {
		t.Fatalf("expected NaN, got %v", doc.Double())
	}
}
