package slider

// viewportLock tells the next reconcile how the last active index change
// was produced.
type viewportLock uint8

const (
	lockNone   viewportLock = iota
	lockFollow              // items navigation: shift the window minimally
	lockPlaced              // slide navigation already placed the window
)

// viewport owns the first visible index.
type viewport struct {
	first int
	lock  viewportLock

	// inputs of the last reconcile
	active  int
	count   int
	perPage int
	primed  bool
}

func newViewport(active int) *viewport {
	return &viewport{first: active}
}

// isVisible reports whether idx lies in the window starting at first.
func isVisible(idx, first, perPage int) bool {
	return idx >= first && idx < first+perPage
}

// maxFirst is the largest valid first visible index.
func maxFirst(count, perPage int) int {
	return max(0, count-perPage)
}

func clampFirst(first, count, perPage int) int {
	return max(0, min(first, maxFirst(count, perPage)))
}

// setFirst moves the window, clamped to the valid range.
func (v *viewport) setFirst(first int) {
	v.first = clampFirst(first, v.count, v.perPage)
}

// reconcile recomputes the first visible index from the active index. It is
// called every frame; with unchanged inputs it does nothing.
func (v *viewport) reconcile(active, count, perPage int, phase DragPhase) {
	if v.primed && active == v.active && count == v.count && perPage == v.perPage {
		return
	}
	forward := v.primed && active > v.active
	v.active, v.count, v.perPage = active, count, perPage
	v.primed = true

	lock := v.lock
	v.lock = lockNone

	if count == 0 || perPage < 1 {
		v.first = 0
		return
	}
	if phase != Settled {
		v.first = clampFirst(v.first, count, perPage)
		return
	}

	switch lock {
	case lockPlaced:
		v.first = clampFirst(v.first, count, perPage)
	case lockFollow:
		first := v.first
		if active < first {
			first = active
		} else if active > first+perPage-1 {
			first = active - perPage + 1
		}
		v.first = clampFirst(first, count, perPage)
	default:
		v.first = clampFirst(active-placesBeforeCenter(perPage, forward), count, perPage)
	}
}

// placesBeforeCenter is how many slots precede the active item when it is
// centered. Forward moves round up so one more item stays ahead.
func placesBeforeCenter(perPage int, forward bool) int {
	if forward {
		return perPage / 2
	}
	return (perPage - 1) / 2
}
