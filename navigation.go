package slider

// triggerPair detects changes of the externally supplied previous/next
// counters. The first values seen are a baseline and fire nothing.
type triggerPair struct {
	prev, next int
	primed     bool
}

// observe records new counter values and reports which of them changed.
func (t *triggerPair) observe(prev, next int) (firePrev, fireNext bool) {
	if !t.primed {
		t.prev, t.next, t.primed = prev, next, true
		return false, false
	}
	firePrev, fireNext = prev != t.prev, next != t.next
	t.prev, t.next = prev, next
	return firePrev, fireNext
}

// Previous steps back by one item or one page, depending on the navigation
// target.
func (s *Slider) Previous() {
	s.navigate(-1)
}

// Next steps forward by one item or one page, depending on the navigation
// target.
func (s *Slider) Next() {
	s.navigate(1)
}

// SetNavigationTriggers drives Previous and Next from counters. Only a change
// of a counter navigates, so the same values can be pushed every frame.
func (s *Slider) SetNavigationTriggers(prev, next int) {
	firePrev, fireNext := s.triggers.observe(prev, next)
	if firePrev {
		s.Previous()
	}
	if fireNext {
		s.Next()
	}
}

func (s *Slider) navigate(delta int) {
	count, perPage := s.Len(), s.dims.itemsPerPage()
	if count == 0 || perPage < 1 {
		return
	}

	if s.navTarget == NavigateItems {
		s.debugf("navigate items %+d from %d", delta, s.index.get())
		s.view.lock = lockFollow
		s.index.set(s.index.get() + delta)
		return
	}

	first := s.view.first
	s.view.setFirst(nextPage(first, delta, count, perPage))
	s.debugf("navigate slide %+d: first %d -> %d", delta, first, s.view.first)

	s.view.lock = lockNone
	if a, ok := correctActive(s.index.get(), s.view.first, perPage); ok {
		s.view.lock = lockPlaced
		s.index.set(a)
	}
}

// nextPage returns the first index one page away from first. A step past
// either end first stops at the end, and wraps around once already there.
func nextPage(first, delta, count, perPage int) int {
	last := maxFirst(count, perPage)
	next := first + delta*perPage
	switch {
	case next < 0 && first > 0:
		return 0
	case next < 0:
		return last
	case next > last && first < last:
		return last
	case next > last:
		return 0
	}
	return next
}
