package domain

import (
	"encoding/json"
	"testing"
)

func TestStringList_NilMarshalsAsEmptyArray(t *testing.T) {
	t.Parallel()

	var l StringList
	b, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("nil list must marshal to [], got %s", b)
	}

	v, err := l.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "[]" {
		t.Fatalf("nil list must store as [], got %v", v)
	}
}

func TestStringList_ScanRoundTrip(t *testing.T) {
	t.Parallel()

	orig := StringList{"/uploads/a.jpg", "/uploads/b.jpg"}
	v, err := orig.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var got StringList
	if err := got.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 2 || got[0] != orig[0] || got[1] != orig[1] {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestStringList_ScanNilAndEmpty(t *testing.T) {
	t.Parallel()

	var l StringList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Fatalf("scanning NULL must yield an empty list, got %v", l)
	}

	if err := l.Scan([]byte("")); err != nil {
		t.Fatalf("scan empty: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("scanning empty bytes must yield an empty list, got %v", l)
	}
}
