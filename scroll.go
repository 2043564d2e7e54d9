package slider

import "math"

// scrollAnimator owns the page-level horizontal translation of the track.
type scrollAnimator struct {
	x *Value

	first  int
	slot   float64
	count  int
	primed bool
}

func newScrollAnimator() *scrollAnimator {
	return &scrollAnimator{x: NewValue(0)}
}

// animateTo moves the track to target.
func (a *scrollAnimator) animateTo(target float64, immediate bool) {
	a.x.Start(target, immediate)
}

// restPosition is the track translation at which first is the leftmost
// visible item.
func restPosition(first int, slot float64) float64 {
	return -float64(first) * slot
}

// retarget starts a transition toward the rest position of first. It is a
// no-op when nothing changed, and while a gesture owns the track unless the
// slot size or item count changed underneath it. The first valid slot size
// jumps without easing. Reports whether a transition was started.
func (a *scrollAnimator) retarget(first int, slot float64, count int, phase DragPhase) bool {
	if slot <= 0 {
		return false
	}
	sizeChanged := slot != a.slot || count != a.count
	if a.primed && first == a.first && !sizeChanged {
		return false
	}
	if phase != Settled && !sizeChanged {
		return false
	}
	immediate := a.slot <= 0
	a.first, a.slot, a.count = first, slot, count
	a.primed = true
	a.animateTo(restPosition(first, slot), immediate)
	return true
}

// liveFirst derives the first visible index from a track translation.
func liveFirst(x, slot float64, count, perPage int) int {
	if slot <= 0 {
		return 0
	}
	i := int(math.Round(math.Max(0, -x) / slot))
	return clampFirst(i, count, perPage)
}

// correctActive returns the index active should move to so that it stays
// inside the window starting at first, and whether a move is needed.
func correctActive(active, first, perPage int) (int, bool) {
	last := first + perPage - 1
	switch {
	case active < first:
		return first, true
	case active > last:
		return last, true
	}
	return active, false
}
