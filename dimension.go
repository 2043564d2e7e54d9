package slider

import (
	"math"
	"time"
)

// dimensionTracker measures the container and the first item and derives
// the slot size and the number of items per page from them.
//
// Raw measurements are throttled. The derived page size and slot size are
// debounced, except for the very first valid measurement, which applies
// immediately so the first frame is laid out correctly.
type dimensionTracker struct {
	mode    ItemsPerPage
	initial int

	container throttled[float64]
	item      throttled[float64]

	perPage  debounced[int]
	slot     debounced[float64]
	measured bool
}

func newDimensionTracker(mode ItemsPerPage, initial int) *dimensionTracker {
	if initial < 1 {
		initial = 1
	}
	return &dimensionTracker{
		mode:      mode,
		initial:   initial,
		container: newThrottled(0.0, defaultThrottleInterval),
		item:      newThrottled(0.0, defaultThrottleInterval),
		perPage:   newDebounced(initial, defaultDebounceDelay),
		slot:      newDebounced(0.0, defaultDebounceDelay),
	}
}

// observe records the latest container width and the first item's box. It
// is a no-op while no item is mounted.
func (d *dimensionTracker) observe(containerWidth float64, firstItem *Node) {
	if firstItem == nil {
		return
	}
	d.container.set(containerWidth)
	if d.mode.Auto {
		d.item.set(firstItem.BoxWidth())
	}
}

// setMode switches between automatic and fixed page sizes. Leaving
// automatic mode forgets the item measurement so a later switch back starts
// from a fresh one.
func (d *dimensionTracker) setMode(mode ItemsPerPage) {
	if d.mode.Auto && !mode.Auto {
		d.item = newThrottled(0.0, defaultThrottleInterval)
	}
	d.mode = mode
}

// advance moves the timers forward and reports whether the derived page
// size or slot size changed.
func (d *dimensionTracker) advance(dt time.Duration) bool {
	d.container.advance(dt)
	d.item.advance(dt)

	prevPerPage, prevSlot := d.perPage.get(), d.slot.get()

	perPage, slot, ok := derivePageSize(d.mode, d.initial, d.container.get(), d.item.get())
	if ok {
		if !d.measured {
			d.measured = true
			d.perPage.setNow(perPage)
			d.slot.setNow(slot)
		} else {
			d.perPage.setDelayed(perPage)
			d.slot.setDelayed(slot)
		}
	}
	d.perPage.advance(dt)
	d.slot.advance(dt)

	return d.perPage.get() != prevPerPage || d.slot.get() != prevSlot
}

func (d *dimensionTracker) itemsPerPage() int {
	return d.perPage.get()
}

func (d *dimensionTracker) slotSize() float64 {
	return d.slot.get()
}

func (d *dimensionTracker) containerSize() float64 {
	return d.container.get()
}

func (d *dimensionTracker) itemSize() float64 {
	return d.item.get()
}

// derivePageSize computes items per page and slot size from measurements.
// ok is false when the measurements cannot produce a layout yet, in which
// case the previous values stay in effect.
func derivePageSize(mode ItemsPerPage, initial int, container, item float64) (perPage int, slot float64, ok bool) {
	if container <= 0 {
		return 0, 0, false
	}
	if mode.Auto {
		if item <= 0 {
			return 0, 0, false
		}
		return int(math.Round(container / item)), item, true
	}
	perPage = mode.Count
	if perPage <= 0 {
		perPage = initial
	}
	return perPage, container / float64(perPage), true
}
