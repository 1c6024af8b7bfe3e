package vlist

import "testing"

func TestRange(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if !EmptyRange.Empty() {
			t.Errorf("EmptyRange should be empty")
		}
		if (Range{First: 5, Last: 2}).Empty() != true {
			t.Errorf("last < first should be empty")
		}
		if (Range{First: 3, Last: 3}).Empty() {
			t.Errorf("single-index range should not be empty")
		}
	})

	t.Run("Len", func(t *testing.T) {
		if got := EmptyRange.Len(); got != 0 {
			t.Errorf("expected len 0, got %d", got)
		}
		if got := (Range{First: 2, Last: 4}).Len(); got != 3 {
			t.Errorf("expected len 3, got %d", got)
		}
		if got := (Range{First: 7, Last: 7}).Len(); got != 1 {
			t.Errorf("expected len 1, got %d", got)
		}
	})

	t.Run("Contains", func(t *testing.T) {
		r := Range{First: 2, Last: 4}
		for _, i := range []int{2, 3, 4} {
			if !r.Contains(i) {
				t.Errorf("expected %v to contain %d", r, i)
			}
		}
		for _, i := range []int{1, 5, -1} {
			if r.Contains(i) {
				t.Errorf("expected %v not to contain %d", r, i)
			}
		}
	})

	t.Run("Shift", func(t *testing.T) {
		r := Range{First: 1, Last: 3}.Shift(1)
		if r.First != 2 || r.Last != 4 {
			t.Errorf("expected (2,4), got (%d,%d)", r.First, r.Last)
		}
		if got := EmptyRange.Shift(10); !got.Empty() {
			t.Errorf("shifting an empty range should stay empty")
		}
	})
}
