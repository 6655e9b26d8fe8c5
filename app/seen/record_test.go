package seen

import (
	"testing"
)

func TestRecord(t *testing.T) {
	r := NewRecord([]string{"a", "b"})

	if !r.Contains("a") || !r.Contains("b") {
		t.Error("Expected loaded identifiers to be found")
	}
	if r.Contains("A") {
		t.Error("Expected lookup to be case-sensitive")
	}
	if r.Contains("c") {
		t.Error("Expected unknown identifier to be absent")
	}

	r.Append("c")
	if !r.Contains("c") {
		t.Error("Expected appended identifier to be found")
	}

	ids := r.IDs()
	expected := []string{"a", "b", "c"}
	if len(ids) != len(expected) {
		t.Fatalf("Expected %d identifiers, got %d", len(expected), len(ids))
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("Expected %s at %d, got %s", expected[i], i, ids[i])
		}
	}
}

func TestRecordIDsIsACopy(t *testing.T) {
	r := NewRecord([]string{"a"})
	ids := r.IDs()
	ids[0] = "changed"

	if r.IDs()[0] != "a" {
		t.Error("Expected IDs to return a copy")
	}
}

func TestRecordKeepsDuplicates(t *testing.T) {
	r := NewRecord([]string{"a", "a"})
	if r.Len() != 2 {
		t.Errorf("Expected duplicates from storage to be preserved, got %d", r.Len())
	}
}
