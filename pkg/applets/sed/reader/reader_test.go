package reader

import (
	"strings"
	"testing"
)

func drain(t *testing.T, r *Reader) []string {
	t.Helper()
	var out []string
	for {
		rec, ok, err := r.NextRecord()
		if err != nil {
			t.Fatalf("NextRecord: %v", err)
		}
		if !ok {
			return out
		}
		out = append(out, string(rec))
	}
}

func TestNoPhantomFinalRecord(t *testing.T) {
	r := New('\n', nil, false, strings.NewReader("a\nb\n"))
	got := drain(t, r)
	want := []string{"a", "b"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEmptyRecordBetweenTerminators(t *testing.T) {
	r := New('\n', nil, false, strings.NewReader("a\n\nb\n"))
	got := drain(t, r)
	want := []string{"a", "", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHasMoreDoesNotConsume(t *testing.T) {
	r := New('\n', nil, false, strings.NewReader("a\nb\n"))
	more, err := r.HasMore()
	if err != nil || !more {
		t.Fatalf("HasMore: %v, %v", more, err)
	}
	rec, ok, err := r.NextRecord()
	if err != nil || !ok || string(rec) != "a" {
		t.Fatalf("NextRecord: %q, %v, %v", rec, ok, err)
	}
}

func TestSeparateModeEndsAtFileBoundary(t *testing.T) {
	r := New('\n', nil, true, strings.NewReader("a\n"))
	rec, ok, err := r.NextRecord()
	if err != nil || !ok || string(rec) != "a" {
		t.Fatalf("NextRecord: %q, %v, %v", rec, ok, err)
	}
	more, err := r.HasMore()
	if err != nil {
		t.Fatalf("HasMore: %v", err)
	}
	if more {
		t.Errorf("expected HasMore to report false once the current file ends in separate mode")
	}
}
