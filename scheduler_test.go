package vlist

import "testing"

func TestScheduler(t *testing.T) {
	t.Run("FIFO", func(t *testing.T) {
		s := NewScheduler()
		var order []int
		s.Defer(func() { order = append(order, 1) })
		s.Defer(func() { order = append(order, 2) })
		s.Defer(func() { order = append(order, 3) })

		if s.Pending() != 3 {
			t.Errorf("expected 3 pending, got %d", s.Pending())
		}
		s.Drain()
		if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
			t.Errorf("expected [1,2,3], got %v", order)
		}
		if s.Pending() != 0 {
			t.Errorf("expected 0 pending after drain, got %d", s.Pending())
		}
	})

	t.Run("DeferDuringDrain", func(t *testing.T) {
		s := NewScheduler()
		var order []int
		s.Defer(func() {
			order = append(order, 1)
			s.Defer(func() { order = append(order, 3) })
		})
		s.Defer(func() { order = append(order, 2) })

		s.Drain()
		if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
			t.Errorf("expected [1,2,3], got %v", order)
		}
	})

	t.Run("DrainEmpty", func(t *testing.T) {
		s := NewScheduler()
		s.Drain() // must not hang or panic
	})
}
