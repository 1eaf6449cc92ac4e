package notify

type subscription struct {
	n  int
	h  Handle
	nf Notifier
}

// Observer watches collections of entities and every entity currently in
// them, forwarding any structural or property change as a single call to
// changed. It does not say what changed.
//
// An entity is watched once no matter how many observed collections hold it;
// it is released when the last of them drops it.
type Observer[T comparable] struct {
	changed     func()
	entities    map[T]*subscription
	collections map[Observable[T]]Handle
}

// NewObserver returns an Observer calling changed on every change; changed
// is usually a Signal's Raise.
func NewObserver[T comparable](changed func()) *Observer[T] {
	return &Observer[T]{
		changed:     changed,
		entities:    make(map[T]*subscription),
		collections: make(map[Observable[T]]Handle),
	}
}

// Initialize starts observing src and its current items. A nil src, or an
// Observable already observed, is a no-op.
func (o *Observer[T]) Initialize(src Source[T]) {
	if src == nil {
		return
	}
	if obs, ok := src.(Observable[T]); ok {
		if _, dup := o.collections[obs]; dup {
			return
		}
		h := obs.OnCollectionChanged(o.onCollectionChanged)
		if h.IsZero() {
			return
		}
		o.collections[obs] = h
	}
	for _, x := range src.Items() {
		o.watch(x)
	}
}

// Dispose stops observing src and its current items. Disposing an
// Observable that is not observed is a no-op; a plain Source must be
// disposed once per Initialize.
func (o *Observer[T]) Dispose(src Source[T]) {
	if src == nil {
		return
	}
	if obs, ok := src.(Observable[T]); ok {
		h, ok := o.collections[obs]
		if !ok {
			return
		}
		obs.RemoveCollectionCallback(h)
		delete(o.collections, obs)
	}
	for _, x := range src.Items() {
		o.unwatch(x)
	}
}

// Watching reports whether x has a live property subscription.
func (o *Observer[T]) Watching(x T) bool {
	_, ok := o.entities[x]
	return ok
}

// Len returns the number of watched entities.
func (o *Observer[T]) Len() int { return len(o.entities) }

func (o *Observer[T]) onCollectionChanged(c Change[T]) {
	for _, x := range c.Old {
		o.unwatch(x)
	}
	for _, x := range c.New {
		o.watch(x)
	}
	o.changed()
}

func (o *Observer[T]) onPropertyChanged(string) { o.changed() }

func (o *Observer[T]) watch(x T) {
	nf, ok := any(x).(Notifier)
	if !ok {
		return
	}
	if s := o.entities[x]; s != nil {
		s.n++
		return
	}
	o.entities[x] = &subscription{n: 1, h: nf.OnChange(o.onPropertyChanged), nf: nf}
}

func (o *Observer[T]) unwatch(x T) {
	s := o.entities[x]
	if s == nil {
		return
	}
	if s.n--; s.n == 0 {
		s.nf.RemoveCallback(s.h)
		delete(o.entities, x)
	}
}
