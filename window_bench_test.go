package vlist

import (
	"fmt"
	"testing"
)

// Benchmark continuous scrolling - the real test
func BenchmarkWindowScroll(b *testing.B) {
	type Item struct {
		ID     int
		Name   string
		Status string
	}

	makeItems := func(n int) []Item {
		items := make([]Item, n)
		for i := range items {
			items[i] = Item{
				ID:     i,
				Name:   fmt.Sprintf("Item %d with some longer text", i),
				Status: []string{"active", "pending", "done"}[i%3],
			}
		}
		return items
	}

	render := func(item Item, idx int) Component {
		return Textf("%5d %s [%s]", item.ID, item.Name, item.Status)
	}

	sizes := []int{1000, 10000, 100000, 1000000}

	for _, size := range sizes {
		items := makeItems(size)

		b.Run(fmt.Sprintf("Items_%d", size), func(b *testing.B) {
			host := NewElement()
			host.SetSize(120, 50)
			w, err := NewWindow[Item](ChildSlotOf(host), NewScheduler())
			if err != nil {
				b.Fatal(err)
			}
			rec := NewReconciler(host)
			w.OnOutput(func(seq []Keyed) { rec.Apply(seq) })
			w.Update(NewConfig[Item]().
				Items(items).
				RenderItem(render).
				KeyFunc(func(it Item) any { return it.ID }))

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				w.Engine().ScrollBy(1)
				if w.Engine().ScrollTop() >= size-50 {
					w.Engine().ScrollTo(0)
				}
			}
		})
	}
}

func BenchmarkProjection(b *testing.B) {
	items := make([]string, 10000)
	for i := range items {
		items[i] = fmt.Sprintf("row-%d", i)
	}

	host := NewElement()
	host.SetSize(80, 40)
	w, err := NewWindow[string](ChildSlotOf(host), NewScheduler())
	if err != nil {
		b.Fatal(err)
	}
	w.Update(NewConfig[string]().
		Items(items).
		RenderItem(func(s string, i int) Component { return Text(s) }))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if out := w.Project(); len(out) == 0 {
			b.Fatal("empty projection")
		}
	}
}
