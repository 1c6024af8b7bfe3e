package vlist

import "fmt"

// Reconciler applies keyed sequences to a host element's children with
// minimal churn: a key that appears in consecutive sequences keeps its
// element node, reordered as needed, so items that stay visible across a
// window slide are never re-mounted.
type Reconciler struct {
	host  *Element
	keys  []any // key per current child, in order
	debug func(string)
}

// NewReconciler creates a reconciler managing host's children.
func NewReconciler(host *Element) *Reconciler {
	return &Reconciler{host: host}
}

// Debug installs a sink for diagnostics (duplicate keys). Nil disables.
func (r *Reconciler) Debug(fn func(string)) *Reconciler {
	r.debug = fn
	return r
}

// Keys returns the keys of the currently mounted children, in order.
func (r *Reconciler) Keys() []any {
	return r.keys
}

// Apply updates the host's children to match seq. Surviving keys keep
// their element (pointer identity); new keys mount fresh elements;
// vanished keys unmount. Within one sequence the first occurrence of a
// duplicate key wins and the rest are dropped.
func (r *Reconciler) Apply(seq []Keyed) {
	prev := make(map[any]*Element, len(r.keys))
	for i, k := range r.keys {
		prev[k] = r.host.children[i]
	}

	next := make([]*Element, 0, len(seq))
	keys := make([]any, 0, len(seq))
	seen := make(map[any]bool, len(seq))
	for _, kv := range seq {
		if seen[kv.Key] {
			if r.debug != nil {
				r.debug(fmt.Sprintf("vlist: duplicate key %v dropped", kv.Key))
			}
			continue
		}
		seen[kv.Key] = true

		el := prev[kv.Key]
		if el == nil {
			el = NewElement()
		}
		el.SetContent(kv.Content)
		next = append(next, el)
		keys = append(keys, kv.Key)
	}

	r.host.ReplaceChildren(next)
	r.keys = keys
}
