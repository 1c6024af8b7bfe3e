package vlist

import "testing"

func TestElement(t *testing.T) {
	t.Run("Children", func(t *testing.T) {
		parent := NewElement()
		a, b := NewElement(), NewElement()
		parent.AppendChild(a).AppendChild(b)

		if len(parent.Children()) != 2 {
			t.Errorf("expected 2 children, got %d", len(parent.Children()))
		}
		if a.Parent() != parent || b.Parent() != parent {
			t.Errorf("children should point back at parent")
		}

		parent.RemoveChild(0)
		if len(parent.Children()) != 1 || parent.Children()[0] != b {
			t.Errorf("expected [b] after removal")
		}
		if a.Parent() != nil {
			t.Errorf("removed child should be detached")
		}
	})

	t.Run("ReplaceChildren", func(t *testing.T) {
		parent := NewElement()
		a, b, c := NewElement(), NewElement(), NewElement()
		parent.AppendChild(a).AppendChild(b)

		parent.ReplaceChildren([]*Element{b, c})
		if len(parent.Children()) != 2 {
			t.Errorf("expected 2 children, got %d", len(parent.Children()))
		}
		if a.Parent() != nil {
			t.Errorf("dropped child should be detached")
		}
		if b.Parent() != parent || c.Parent() != parent {
			t.Errorf("kept and new children should be attached")
		}
	})

	t.Run("DispatchOrder", func(t *testing.T) {
		el := NewElement()
		var order []int
		el.On(EventScroll, func(Event) { order = append(order, 1) })
		el.On(EventScroll, func(Event) { order = append(order, 2) })

		el.Dispatch(Event{Type: EventScroll, Delta: 1})
		if len(order) != 2 || order[0] != 1 || order[1] != 2 {
			t.Errorf("expected [1,2], got %v", order)
		}
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		el := NewElement()
		calls := 0
		unsub := el.On(EventScroll, func(Event) { calls++ })
		el.On(EventScroll, func(Event) {})

		el.Dispatch(Event{Type: EventScroll})
		unsub()
		el.Dispatch(Event{Type: EventScroll})
		if calls != 1 {
			t.Errorf("expected 1 call after unsubscribe, got %d", calls)
		}
	})

	t.Run("SetSizeDispatchesResize", func(t *testing.T) {
		el := NewElement()
		var got Event
		el.On(EventResize, func(e Event) { got = e })

		el.SetSize(80, 24)
		if got.Type != EventResize || got.Width != 80 || got.Height != 24 {
			t.Errorf("expected resize 80x24, got %+v", got)
		}
		w, h := el.Size()
		if w != 80 || h != 24 {
			t.Errorf("expected size 80x24, got %dx%d", w, h)
		}
	})

	t.Run("Render", func(t *testing.T) {
		el := NewElement()
		el.AppendChild(NewElement().SetContent(Text("one")))
		el.AppendChild(NewElement().SetContent(Text("two")))

		if got := el.Render(0); got != "one\ntwo" {
			t.Errorf("expected %q, got %q", "one\ntwo", got)
		}
	})
}

func TestSlot(t *testing.T) {
	t.Run("ChildContent", func(t *testing.T) {
		if !ChildSlot().ChildContent() {
			t.Errorf("child slot should host child content")
		}
		if AttributeSlot().ChildContent() {
			t.Errorf("attribute slot should not host child content")
		}
	})

	t.Run("AttachResolvesParent", func(t *testing.T) {
		s := ChildSlot()
		if s.Parent() != nil {
			t.Errorf("unattached slot should have no parent")
		}
		host := NewElement()
		s.Attach(host)
		if s.Parent() != host {
			t.Errorf("expected parent after attach")
		}
	})

	t.Run("Release", func(t *testing.T) {
		host := NewElement()
		s := ChildSlotOf(host)
		s.Release()
		if !s.Released() {
			t.Errorf("expected released")
		}
		if s.Parent() != nil {
			t.Errorf("released slot should resolve no parent")
		}
	})
}
