package notify

import (
	"testing"
)

type entity struct {
	Properties
	value int
}

func (e *entity) SetValue(v int) {
	e.value = v
	e.Notify("Value")
}

// mute changes state without notifying.
func (e *entity) mute(v int) { e.value = v }

func newEntities(n int) []*entity {
	xs := make([]*entity, n)
	for i := range xs {
		xs[i] = &entity{}
	}
	return xs
}

func TestListRemoveDuringFire(t *testing.T) {
	var (
		l     List[int]
		calls []string
		hb    Handle
	)
	l.Add(func(int) {
		calls = append(calls, "a")
		l.Remove(hb)
	})
	hb = l.Add(func(int) { calls = append(calls, "b") })
	l.Fire(0)
	if len(calls) != 1 || calls[0] != "a" {
		t.Fatalf("have %v, want [a]", calls)
	}
	if have, want := l.Len(), 1; have != want {
		t.Fatalf("have %v callbacks, want %v", have, want)
	}
	if l.Remove(hb) {
		t.Fatal("Remove of a removed handle returned true")
	}
}

func TestSignalCoalesces(t *testing.T) {
	var n int
	s := NewSignal(func() { n++ })
	s.Raise()
	if n != 1 {
		t.Fatalf("have %v raises, want 1", n)
	}
	s.Batch(func() {
		s.Raise()
		s.Batch(func() { s.Raise(); s.Raise() })
		if n != 1 {
			t.Fatalf("delivered while held, have %v", n)
		}
	})
	if n != 2 {
		t.Fatalf("have %v raises, want 2", n)
	}
	s.Batch(func() {})
	if n != 2 {
		t.Fatalf("empty batch delivered, have %v", n)
	}
}

func TestObserverProperty(t *testing.T) {
	var n int
	xs := newEntities(3)
	c := NewCollection(xs...)
	o := NewObserver[*entity](func() { n++ })
	o.Initialize(c)

	xs[1].SetValue(10)
	if n != 1 {
		t.Fatalf("have %v signals, want 1", n)
	}

	c.Remove(xs[1])
	if n != 2 {
		t.Fatalf("have %v signals after remove, want 2", n)
	}
	xs[1].SetValue(11)
	if n != 2 {
		t.Fatalf("removed entity still observed, have %v signals", n)
	}
	if o.Watching(xs[1]) || xs[1].Observers() != 0 {
		t.Fatal("subscription of removed entity leaked")
	}
}

func TestObserverMembership(t *testing.T) {
	var n int
	xs := newEntities(4)
	c := NewCollection(xs[0], xs[1])
	o := NewObserver[*entity](func() { n++ })
	o.Initialize(c)

	c.Add(xs[2])
	c.Set(0, xs[3])
	c.Insert(0, xs[0])
	want := []*entity{xs[0], xs[3], xs[1], xs[2]}
	for i, x := range c.Items() {
		if x != want[i] {
			t.Fatalf("item %v: have %p, want %p", i, x, want[i])
		}
		if !o.Watching(x) {
			t.Fatalf("item %v not watched", i)
		}
	}
	if have, want := o.Len(), c.Len(); have != want {
		t.Fatalf("watching %v entities, want %v", have, want)
	}
	if n != 3 {
		t.Fatalf("have %v signals, want 3", n)
	}

	c.Clear()
	if o.Len() != 0 {
		t.Fatalf("watching %v entities after clear, want 0", o.Len())
	}
	for i, x := range xs {
		if x.Observers() != 0 {
			t.Fatalf("entity %v has %v callbacks after clear", i, x.Observers())
		}
	}
}

func TestObserverDispose(t *testing.T) {
	var n int
	xs := newEntities(3)
	c := NewCollection(xs...)
	o := NewObserver[*entity](func() { n++ })
	o.Initialize(c)
	o.Dispose(c)
	o.Dispose(c)

	c.Add(&entity{})
	for _, x := range xs {
		x.SetValue(1)
	}
	if n != 0 {
		t.Fatalf("have %v signals after dispose, want 0", n)
	}
	if c.Observers() != 0 || o.Len() != 0 {
		t.Fatalf("leaked subscriptions: collection %v, entities %v", c.Observers(), o.Len())
	}

	o.Initialize(nil)
	o.Dispose(nil)
	o.Initialize(Slice[*entity]{})
	var empty *Collection[*entity]
	o.Initialize(empty)
	o.Dispose(empty)
}

func TestObserverShared(t *testing.T) {
	var n int
	x := &entity{}
	a, b := NewCollection(x), NewCollection(x)
	o := NewObserver[*entity](func() { n++ })
	o.Initialize(a)
	o.Initialize(b)
	if have := x.Observers(); have != 1 {
		t.Fatalf("have %v callbacks on shared entity, want 1", have)
	}

	a.Remove(x)
	x.SetValue(1)
	if n != 2 {
		t.Fatalf("have %v signals, want 2", n)
	}

	o.Dispose(b)
	x.SetValue(2)
	if n != 2 || x.Observers() != 0 {
		t.Fatalf("shared entity still watched: %v signals, %v callbacks", n, x.Observers())
	}
}

func TestObserverRepeatedInitialize(t *testing.T) {
	var n int
	x := &entity{}
	c := NewCollection(x)
	o := NewObserver[*entity](func() { n++ })
	o.Initialize(c)
	o.Initialize(c)
	o.Dispose(c)
	x.SetValue(1)
	if o.Watching(x) || x.Observers() != 0 || c.Observers() != 0 || n != 0 {
		t.Fatalf("leaked subscription: watching %v, %v entity callbacks, %v collection callbacks, %v signals",
			o.Watching(x), x.Observers(), c.Observers(), n)
	}
}

func TestObserverRepeatedDispose(t *testing.T) {
	var n int
	x := &entity{}
	a, b := NewCollection(x), NewCollection(x)
	o := NewObserver[*entity](func() { n++ })
	o.Initialize(a)
	o.Initialize(b)
	o.Dispose(a)
	o.Dispose(a)
	x.SetValue(1)
	if !o.Watching(x) || n != 1 {
		t.Fatalf("have watching %v, %v signals, want true, 1", o.Watching(x), n)
	}
	o.Dispose(b)
	x.SetValue(2)
	if o.Watching(x) || x.Observers() != 0 || n != 1 {
		t.Fatalf("have watching %v, %v callbacks, %v signals after dispose", o.Watching(x), x.Observers(), n)
	}
}

func TestCollectionNil(t *testing.T) {
	var c *Collection[*entity]
	if c.Len() != 0 || c.Observers() != 0 || c.Index(&entity{}) != -1 || c.Items() != nil {
		t.Fatal("nil collection not empty")
	}
}

func TestObserverPlainSlice(t *testing.T) {
	var n int
	xs := newEntities(2)
	o := NewObserver[*entity](func() { n++ })
	o.Initialize(Slice[*entity](xs))
	xs[0].SetValue(1)
	xs[1].mute(2)
	if n != 1 {
		t.Fatalf("have %v signals, want 1", n)
	}
	o.Dispose(Slice[*entity](xs))
	xs[0].SetValue(3)
	if n != 1 {
		t.Fatalf("have %v signals after dispose, want 1", n)
	}
}

func TestObserverNonNotifier(t *testing.T) {
	var n int
	c := NewCollection(1, 2, 3)
	o := NewObserver[int](func() { n++ })
	o.Initialize(c)
	c.RemoveAt(0)
	c.Reset(4, 5)
	if n != 2 || o.Len() != 0 {
		t.Fatalf("have %v signals and %v watched, want 2 and 0", n, o.Len())
	}
}

func BenchmarkObserverSignal(b *testing.B) {
	xs := newEntities(100)
	c := NewCollection(xs...)
	o := NewObserver[*entity](func() {})
	o.Initialize(c)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		xs[n%len(xs)].SetValue(n)
	}
}
