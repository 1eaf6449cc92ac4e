package notify

// Notifier is implemented by entities raising property change notifications.
// An entity that changes state without calling its callbacks is invisible to
// observers; that is a contract violation of the entity, not detectable here.
type Notifier interface {
	OnChange(fn func(name string)) Handle
	RemoveCallback(h Handle) bool
}

// Properties is an embeddable Notifier.
type Properties struct {
	callbacks List[string]
}

func (p *Properties) OnChange(fn func(name string)) Handle { return p.callbacks.Add(fn) }

func (p *Properties) RemoveCallback(h Handle) bool { return p.callbacks.Remove(h) }

// Notify reports a change of the named property to every callback.
func (p *Properties) Notify(name string) { p.callbacks.Fire(name) }

// Observers returns the number of live callbacks.
func (p *Properties) Observers() int { return p.callbacks.Len() }
