package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
}

func TestAppendLastWins(t *testing.T) {
	h := new(History[float64])
	on := New(2025, 1, 1)
	h.Append(on, 1).Append(on, 2)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if got, _ := h.Get(on); got != 2 {
		t.Errorf("Get(%v) = %v, want 2", on, got)
	}
}

func TestGet(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2025, 1, 5), 5).Append(New(2025, 1, 1), 1)

	if v, ok := h.Get(New(2025, 1, 1)); !ok || v != 1 {
		t.Errorf("Get(2025-01-01) = %v, %v, want 1, true", v, ok)
	}
	if _, ok := h.Get(New(2025, 1, 2)); ok {
		t.Errorf("Get(2025-01-02) found a value, want none")
	}
	if !h.Has(New(2025, 1, 5)) {
		t.Errorf("Has(2025-01-05) = false, want true")
	}
}

func TestLatest(t *testing.T) {
	h := new(History[float64])
	if on, v := h.Latest(); on != (Date{}) || v != 0 {
		t.Errorf("Latest() on empty history = %v, %v, want zero values", on, v)
	}
	h.Append(New(2025, 1, 5), 5).Append(New(2025, 1, 1), 1)
	if on, v := h.Latest(); on != New(2025, 1, 5) || v != 5 {
		t.Errorf("Latest() = %v, %v, want 2025-01-05, 5", on, v)
	}
}
