package partition

import "testing"

func TestCompareOrdersByNamespaceThenTopicThenIndex(t *testing.T) {
	a := ID{Namespace: "kafka-internal", Topic: "__consumer_offsets", Index: 0}
	b := ID{Namespace: "kafka-internal", Topic: "__consumer_offsets", Index: 1}
	c := ID{Namespace: "kafka-internal", Topic: "__transaction_state", Index: 0}
	d := ID{Namespace: "zzz", Topic: "a", Index: 0}

	if !a.Less(b) {
		t.Fatalf("expected %v < %v", a, b)
	}
	if !b.Less(c) {
		t.Fatalf("expected %v < %v (topic ordering)", b, c)
	}
	if !c.Less(d) {
		t.Fatalf("expected %v < %v (namespace ordering)", c, d)
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected equal id to compare 0")
	}
}

func TestIsZero(t *testing.T) {
	if !(ID{}).IsZero() {
		t.Fatalf("expected zero value to report IsZero")
	}
	if (ID{Namespace: "x"}).IsZero() {
		t.Fatalf("non-zero id reported IsZero")
	}
}

func TestStringFormat(t *testing.T) {
	id := ID{Namespace: "kafka-internal", Topic: "__consumer_offsets", Index: 7}
	if got, want := id.String(), "kafka-internal/__consumer_offsets/7"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestMapKey(t *testing.T) {
	m := map[ID]int{}
	m[ID{Namespace: "n", Topic: "t", Index: 1}] = 1
	m[ID{Namespace: "n", Topic: "t", Index: 2}] = 2

	if m[ID{Namespace: "n", Topic: "t", Index: 1}] != 1 {
		t.Fatalf("ID did not behave as a stable map key")
	}
}
