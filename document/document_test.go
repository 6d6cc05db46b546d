package document

import (
	"math"
	"testing"
)

func TestKindsAndAccessors(t *testing.T) {
	if k := NewNull().Kind(); k != Null {
		t.Fatalf("null kind: %v", k)
	}
	if v := NewBool(true); !v.Bool() {
		t.Fatalf("bool payload lost")
	}
	if v := NewUint(math.MaxUint64); v.Uint() != math.MaxUint64 {
		t.Fatalf("uint payload lost")
	}
	if v := NewInt(math.MinInt64); v.Int() != math.MinInt64 {
		t.Fatalf("int payload lost")
	}
	if v := NewDouble(1.5); v.Double() != 1.5 {
		t.Fatalf("double payload lost")
	}
	if v := NewText("abc"); v.Text() != "abc" {
		t.Fatalf("text payload lost")
	}
	if v := NewBytes([]byte{1, 2}); len(v.Bytes()) != 2 {
		t.Fatalf("bytes payload lost")
	}

	var zero Value
	if zero.Kind() != Null {
		t.Fatalf("zero value kind: %v", zero.Kind())
	}
}

func TestAccessorPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewUint(1).Text()
}

func TestObjectOrderAndDuplicates(t *testing.T) {
	obj := NewObject()
	obj.Set("b", NewUint(1))
	obj.Set("a", NewUint(2))
	obj.Set("b", NewUint(3))

	mem := obj.Members()
	if len(mem) != 3 {
		t.Fatalf("expected 3 members, got %d", len(mem))
	}
	keys := []string{mem[0].Key, mem[1].Key, mem[2].Key}
	if keys[0] != "b" || keys[1] != "a" || keys[2] != "b" {
		t.Fatalf("insertion order lost: %v", keys)
	}
	if mem[2].Value.Uint() != 3 {
		t.Fatalf("duplicate key value lost")
	}
	if obj.Len() != 3 {
		t.Fatalf("Len = %d", obj.Len())
	}
}

func TestArrayAppend(t *testing.T) {
	arr := NewArray(NewUint(1))
	arr.Append(NewText("x"))
	if arr.Len() != 2 {
		t.Fatalf("Len = %d", arr.Len())
	}
	if arr.Items()[1].Text() != "x" {
		t.Fatalf("appended item lost")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(NewDouble(math.NaN()), NewDouble(math.NaN())) {
		t.Fatalf("NaN should equal NaN by bit pattern")
	}
	if Equal(NewDouble(0), NewDouble(math.Copysign(0, -1))) {
		t.Fatalf("-0 should differ from +0 by bit pattern")
	}
	if Equal(NewUint(5), NewInt(5)) {
		t.Fatalf("Uint and Int are distinct kinds")
	}

	a := NewObject()
	a.Set("k", NewArray(NewUint(1), NewNull()))
	b := NewObject()
	b.Set("k", NewArray(NewUint(1), NewNull()))
	if !Equal(a, b) {
		t.Fatalf("deep equality failed")
	}
	b.Set("k2", NewNull())
	if Equal(a, b) {
		t.Fatalf("member count ignored")
	}
}

func TestDiagString(t *testing.T) {
	cases := []struct {
		doc  *Value
		want string
	}{
		{NewNull(), "null"},
		{NewBool(true), "true"},
		{NewUint(24), "24"},
		{NewInt(-1000), "-1000"},
		{NewText("IETF"), `"IETF"`},
		{NewBytes([]byte{1, 2, 3}), "h'010203'"},
		{NewDouble(1.5), "1.5"},
		{NewDouble(2), "2.0"},
		{NewDouble(math.NaN()), "NaN"},
		{NewDouble(math.Inf(-1)), "-Infinity"},
		{NewArray(NewUint(1), NewUint(2), NewUint(3)), "[1, 2, 3]"},
	}
	for _, tc := range cases {
		if got := tc.doc.String(); got != tc.want {
			t.Fatalf("diag mismatch: got %q want %q", got, tc.want)
		}
	}

	obj := NewObject()
	obj.Set("a", NewUint(1))
	obj.Set("b", NewArray(NewUint(2), NewUint(3)))
	if got, want := obj.String(), `{"a": 1, "b": [2, 3]}`; got != want {
		t.Fatalf("object diag: got %q want %q", got, want)
	}
}
