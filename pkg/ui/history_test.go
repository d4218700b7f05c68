package ui

import "testing"

func TestHistory(t *testing.T) {
	h := newHistory(3)

	if _, ok := h.prev(); ok {
		t.Error("expected no entry in empty history")
	}

	h.add("a")
	h.add("a")
	h.add("b")
	if h.size() != 2 {
		t.Errorf("expected consecutive duplicates to collapse, got %d entries", h.size())
	}

	h.add("c")
	h.add("d")
	if h.size() != 3 {
		t.Fatalf("expected limit of 3, got %d", h.size())
	}

	for _, expected := range []string{"d", "c", "b"} {
		got, ok := h.prev()
		if !ok || got != expected {
			t.Errorf("prev() = (%q, %v), want %q", got, ok, expected)
		}
	}
	if _, ok := h.prev(); ok {
		t.Error("expected prev to stop at the oldest entry")
	}

	if got, _ := h.next(); got != "c" {
		t.Errorf("next() = %q, want c", got)
	}
}
