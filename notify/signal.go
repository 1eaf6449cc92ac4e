package notify

// Signal is a coalesced "something changed" notification. Raises made while
// the signal is held are delivered once, when the outermost hold is released.
type Signal struct {
	fn      func()
	held    int
	pending bool
}

func NewSignal(fn func()) *Signal { return &Signal{fn: fn} }

// Raise delivers immediately unless held.
func (s *Signal) Raise() {
	if s.held > 0 {
		s.pending = true
		return
	}
	s.fn()
}

func (s *Signal) Hold() { s.held++ }

// Release undoes one Hold and delivers a pending raise when none remain.
func (s *Signal) Release() {
	if s.held == 0 {
		panic("notify: Release without Hold")
	}
	s.held--
	if s.held == 0 && s.pending {
		s.pending = false
		s.fn()
	}
}

// Batch runs fn with the signal held.
func (s *Signal) Batch(fn func()) {
	s.Hold()
	defer s.Release()
	fn()
}
