// Package notify provides explicit change notification for chart entities:
// property callbacks, observable collections and a deep collection observer
// that folds every nested change into one coalesced signal.
package notify

import (
	"github.com/google/uuid"
)

// Handle identifies a registered callback; the zero Handle is never issued.
type Handle uuid.UUID

func (h Handle) String() string { return uuid.UUID(h).String() }

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool { return uuid.UUID(h) == uuid.Nil }

type entry[A any] struct {
	h    Handle
	fn   func(A)
	dead bool
}

// List holds callbacks in registration order; zero value is valid.
type List[A any] struct {
	entries []*entry[A]
}

// Add registers fn and returns its handle.
func (l *List[A]) Add(fn func(A)) Handle {
	e := &entry[A]{h: Handle(uuid.New()), fn: fn}
	l.entries = append(l.entries, e)
	return e.h
}

// Remove unregisters h; returns false if h is not registered.
func (l *List[A]) Remove(h Handle) bool {
	for i, e := range l.entries {
		if e.h == h {
			e.dead = true
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered callbacks.
func (l *List[A]) Len() int { return len(l.entries) }

// Fire calls every callback registered when Fire starts, skipping any
// removed by an earlier callback in the same call.
func (l *List[A]) Fire(a A) {
	if len(l.entries) == 0 {
		return
	}
	snapshot := append([]*entry[A](nil), l.entries...)
	for _, e := range snapshot {
		if !e.dead {
			e.fn(a)
		}
	}
}
