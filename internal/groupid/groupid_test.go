package groupid

import "testing"

func TestFromBytesAndBytes(t *testing.T) {
	id := FromBytes([]byte("my-group"))
	if got := string(id.Bytes()); got != "my-group" {
		t.Fatalf("Bytes() = %q, want %q", got, "my-group")
	}
}

func TestEquality(t *testing.T) {
	a := FromString("g1")
	b := FromString("g1")
	c := FromString("g2")

	if a != b {
		t.Fatalf("expected equal identifiers built from the same string")
	}
	if a == c {
		t.Fatalf("expected distinct identifiers to compare unequal")
	}
}

func TestEmpty(t *testing.T) {
	if !(ID("")).Empty() {
		t.Fatalf("expected zero-value ID to be Empty")
	}
	if FromString("g").Empty() {
		t.Fatalf("non-empty ID reported Empty")
	}
}

func TestMapKey(t *testing.T) {
	m := map[ID]int{}
	m[FromString("a")] = 1
	m[FromString("b")] = 2

	if m[FromString("a")] != 1 {
		t.Fatalf("ID did not behave as a stable map key")
	}
}
