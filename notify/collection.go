package notify

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Action is the kind of structural change made to a Collection.
type Action uint8

const (
	Add Action = iota
	Remove
	Replace
	Reset
)

func (a Action) String() string {
	switch a {
	case Add:
		return "Add"
	case Remove:
		return "Remove"
	case Replace:
		return "Replace"
	case Reset:
		return "Reset"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Change describes one structural change. Old holds the items that left the
// collection and New the items that entered it, starting at Index.
type Change[T any] struct {
	Action Action
	Index  int
	Old    []T
	New    []T
}

// Source is any ordered sequence of entities.
type Source[T any] interface {
	Items() []T
}

// Observable is a Source that reports its own structural changes.
type Observable[T any] interface {
	Source[T]
	OnCollectionChanged(fn func(Change[T])) Handle
	RemoveCollectionCallback(h Handle) bool
}

// Slice adapts a plain slice to Source; it never reports changes.
type Slice[T any] []T

func (s Slice[T]) Items() []T { return s }

// Collection is an ordered, mutable, observable sequence.
// Methods reading a nil *Collection behave as on an empty one.
type Collection[T comparable] struct {
	items     []T
	callbacks List[Change[T]]
}

func NewCollection[T comparable](items ...T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items)}
}

// Items returns a copy of the current contents.
func (c *Collection[T]) Items() []T {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func (c *Collection[T]) At(i int) T { return c.items[i] }

// Index returns the position of x or -1.
func (c *Collection[T]) Index(x T) int {
	if c == nil {
		return -1
	}
	return slices.Index(c.items, x)
}

func (c *Collection[T]) OnCollectionChanged(fn func(Change[T])) Handle {
	if c == nil {
		return Handle{}
	}
	return c.callbacks.Add(fn)
}

func (c *Collection[T]) RemoveCollectionCallback(h Handle) bool {
	if c == nil {
		return false
	}
	return c.callbacks.Remove(h)
}

// Observers returns the number of collection callbacks.
func (c *Collection[T]) Observers() int {
	if c == nil {
		return 0
	}
	return c.callbacks.Len()
}

// Add appends xs.
func (c *Collection[T]) Add(xs ...T) {
	if len(xs) == 0 {
		return
	}
	i := len(c.items)
	c.items = append(c.items, xs...)
	c.callbacks.Fire(Change[T]{Action: Add, Index: i, New: slices.Clone(xs)})
}

// Insert places x at i, shifting later items.
func (c *Collection[T]) Insert(i int, x T) {
	c.items = slices.Insert(c.items, i, x)
	c.callbacks.Fire(Change[T]{Action: Add, Index: i, New: []T{x}})
}

// RemoveAt removes and returns the item at i.
func (c *Collection[T]) RemoveAt(i int) T {
	x := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	c.callbacks.Fire(Change[T]{Action: Remove, Index: i, Old: []T{x}})
	return x
}

// Remove removes the first occurrence of x; reports whether x was found.
func (c *Collection[T]) Remove(x T) bool {
	i := c.Index(x)
	if i < 0 {
		return false
	}
	c.RemoveAt(i)
	return true
}

// Set replaces the item at i.
func (c *Collection[T]) Set(i int, x T) {
	old := c.items[i]
	c.items[i] = x
	c.callbacks.Fire(Change[T]{Action: Replace, Index: i, Old: []T{old}, New: []T{x}})
}

// Clear removes every item.
func (c *Collection[T]) Clear() { c.Reset() }

// Reset replaces the whole content with xs.
func (c *Collection[T]) Reset(xs ...T) {
	old := c.items
	c.items = slices.Clone(xs)
	c.callbacks.Fire(Change[T]{Action: Reset, Old: old, New: slices.Clone(xs)})
}
