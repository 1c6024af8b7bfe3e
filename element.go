package vlist

import (
	"errors"
	"strings"
)

// ErrChildSlotRequired is returned when a Window is constructed on a slot
// that cannot host child content (or on no slot at all).
var ErrChildSlotRequired = errors.New("vlist: window requires a child-content slot")

// Event names dispatched on elements.
const (
	EventRangeChanged = "rangechanged"
	EventScroll       = "scroll"
	EventResize       = "resize"
)

// Event carries a named notification through an element.
type Event struct {
	Type   string
	Range  Range // EventRangeChanged
	Delta  int   // EventScroll: delta in layout units
	Width  int   // EventResize
	Height int   // EventResize
}

// Element is a node in the live view tree. It can host ordered children,
// carry leaf content, and dispatch named events to listeners synchronously
// in registration order.
type Element struct {
	parent        *Element
	children      []*Element
	content       Component
	width, height int
	listeners     map[string][]func(Event)
}

// NewElement creates a detached element.
func NewElement() *Element {
	return &Element{}
}

// Parent returns the parent element, or nil if detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child elements in order.
func (e *Element) Children() []*Element {
	return e.children
}

// Content returns the leaf content, or nil.
func (e *Element) Content() Component {
	return e.content
}

// SetContent replaces the leaf content.
func (e *Element) SetContent(c Component) *Element {
	e.content = c
	return e
}

// AppendChild adds a child at the end.
func (e *Element) AppendChild(child *Element) *Element {
	child.parent = e
	e.children = append(e.children, child)
	return e
}

// RemoveChild detaches the child at index i.
func (e *Element) RemoveChild(i int) *Element {
	if i < 0 || i >= len(e.children) {
		return e
	}
	e.children[i].parent = nil
	e.children = append(e.children[:i], e.children[i+1:]...)
	return e
}

// ReplaceChildren swaps in a new ordered child list, fixing up parents.
// Children not carried over are detached.
func (e *Element) ReplaceChildren(children []*Element) {
	kept := make(map[*Element]bool, len(children))
	for _, c := range children {
		kept[c] = true
	}
	for _, old := range e.children {
		if !kept[old] {
			old.parent = nil
		}
	}
	for _, c := range children {
		c.parent = e
	}
	e.children = children
}

// Size returns the element's width and height.
func (e *Element) Size() (int, int) {
	return e.width, e.height
}

// SetSize sets the element's size and dispatches a resize event.
func (e *Element) SetSize(w, h int) *Element {
	e.width = w
	e.height = h
	e.Dispatch(Event{Type: EventResize, Width: w, Height: h})
	return e
}

// On registers a listener for the named event and returns an unsubscribe
// function.
func (e *Element) On(typ string, fn func(Event)) func() {
	if e.listeners == nil {
		e.listeners = make(map[string][]func(Event))
	}
	e.listeners[typ] = append(e.listeners[typ], fn)
	idx := len(e.listeners[typ]) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		e.listeners[typ][idx] = nil
	}
}

// Dispatch delivers the event to listeners synchronously, in registration
// order.
func (e *Element) Dispatch(ev Event) {
	for _, fn := range e.listeners[ev.Type] {
		if fn != nil {
			fn(ev)
		}
	}
}

// Render draws the element: leaf content if set, otherwise its children's
// renders joined line by line.
func (e *Element) Render(width int) string {
	if e.content != nil {
		return e.content.Render(width)
	}
	if len(e.children) == 0 {
		return ""
	}
	lines := make([]string, len(e.children))
	for i, c := range e.children {
		lines[i] = c.Render(width)
	}
	return strings.Join(lines, "\n")
}

// slotKind distinguishes valid child-content attachment points from
// positions that cannot host children.
type slotKind int

const (
	slotChild slotKind = iota
	slotAttribute
)

// Slot is an attachment point inside a host element's child content.
// Its host may be nil at first when the enclosing component has not
// finished its own binding; it resolves later via Attach.
type Slot struct {
	host     *Element
	kind     slotKind
	released bool
}

// ChildSlot creates a child-content slot with no resolved host yet.
func ChildSlot() *Slot {
	return &Slot{kind: slotChild}
}

// ChildSlotOf creates a child-content slot already attached to host.
func ChildSlotOf(host *Element) *Slot {
	return &Slot{kind: slotChild, host: host}
}

// AttributeSlot creates a slot in attribute position. It can never host
// child content; constructing a Window on it is a setup error.
func AttributeSlot() *Slot {
	return &Slot{kind: slotAttribute}
}

// ChildContent reports whether the slot can host child content.
func (s *Slot) ChildContent() bool {
	return s.kind == slotChild
}

// Attach resolves the slot's host element.
func (s *Slot) Attach(host *Element) *Slot {
	s.host = host
	return s
}

// Parent returns the slot's host element, or nil if not yet resolved.
func (s *Slot) Parent() *Element {
	if s.released {
		return nil
	}
	return s.host
}

// Release marks the slot torn down. Pending work keyed to the slot
// becomes a no-op.
func (s *Slot) Release() {
	s.released = true
}

// Released reports whether the slot has been torn down.
func (s *Slot) Released() bool {
	return s.released
}
