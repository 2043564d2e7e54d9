package slider

import "time"

// Default coalescing intervals for dimension updates.
const (
	defaultThrottleInterval = 15 * time.Millisecond
	defaultDebounceDelay    = 50 * time.Millisecond
)

// throttled holds a value that changes at most once per interval. The first
// change after a quiet period applies immediately (leading edge); changes
// inside the interval are coalesced into one trailing update.
//
// Time only moves through advance, so behaviour is frame-deterministic.
type throttled[T comparable] struct {
	value      T
	pending    T
	hasPending bool
	interval   time.Duration
	since      time.Duration
	primed     bool
}

func newThrottled[T comparable](initial T, interval time.Duration) throttled[T] {
	return throttled[T]{value: initial, interval: interval}
}

// set requests a new value.
func (t *throttled[T]) set(v T) {
	if !t.primed || t.since >= t.interval {
		t.value = v
		t.hasPending = false
		t.since = 0
		t.primed = true
		return
	}
	if v == t.value {
		t.hasPending = false
		return
	}
	t.pending = v
	t.hasPending = true
}

// advance moves the throttle clock forward and flushes a trailing update
// once the interval has elapsed.
func (t *throttled[T]) advance(dt time.Duration) {
	t.since += dt
	if t.hasPending && t.since >= t.interval {
		t.value = t.pending
		t.hasPending = false
		t.since = 0
	}
}

func (t *throttled[T]) get() T {
	return t.value
}

// debounced holds a value with two setters: setNow applies immediately,
// setDelayed applies once no further delayed set arrives for delay.
type debounced[T comparable] struct {
	value   T
	pending T
	armed   bool
	delay   time.Duration
	wait    time.Duration
}

func newDebounced[T comparable](initial T, delay time.Duration) debounced[T] {
	return debounced[T]{value: initial, delay: delay}
}

func (d *debounced[T]) setNow(v T) {
	d.value = v
	d.armed = false
}

func (d *debounced[T]) setDelayed(v T) {
	if d.armed && v == d.pending {
		return
	}
	if v == d.value {
		d.armed = false
		return
	}
	d.pending = v
	d.wait = d.delay
	d.armed = true
}

// advance returns true when a delayed value was applied.
func (d *debounced[T]) advance(dt time.Duration) bool {
	if !d.armed {
		return false
	}
	d.wait -= dt
	if d.wait > 0 {
		return false
	}
	d.value = d.pending
	d.armed = false
	return true
}

func (d *debounced[T]) get() T {
	return d.value
}
