package slider

// normalizeIndex wraps i into [0, n). ok is false when n is zero.
func normalizeIndex(i, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return ((i % n) + n) % n, true
}

// indexController owns an index, or mirrors one owned by the caller.
//
// The mode is fixed at construction: with an onChange callback every set is
// forwarded (normalized) and the mirrored value only changes through sync;
// without one, set mutates the stored value directly.
type indexController struct {
	value    int
	count    func() int
	onChange func(int)
	optional bool

	set func(i int)
}

func newIndexController(initial int, count func() int, onChange func(int)) *indexController {
	c := &indexController{value: initial, count: count, onChange: onChange}
	if onChange != nil {
		c.set = c.setExternal
	} else {
		c.set = c.setLocal
	}
	return c
}

// newOptionalIndexController is an indexController that may be cleared to
// NoIndex, as the lightbox index is when the lightbox is closed.
func newOptionalIndexController(initial int, count func() int, onChange func(int)) *indexController {
	c := newIndexController(initial, count, onChange)
	c.optional = true
	return c
}

func (c *indexController) setLocal(i int) {
	if n, ok := normalizeIndex(i, c.count()); ok {
		c.value = n
	}
}

func (c *indexController) setExternal(i int) {
	if n, ok := normalizeIndex(i, c.count()); ok {
		c.onChange(n)
	}
}

// clear unsets an optional index.
func (c *indexController) clear() {
	if !c.optional {
		return
	}
	if c.onChange != nil {
		c.onChange(NoIndex)
		return
	}
	c.value = NoIndex
}

// sync applies a value pushed by the caller (the controlled "prop").
func (c *indexController) sync(i int) {
	c.value = i
}

// get returns the current index. Out of range values are wrapped for
// reading; NoIndex is returned as-is for optional controllers, and 0 when
// there are no items.
func (c *indexController) get() int {
	if c.optional && c.value == NoIndex {
		return NoIndex
	}
	n, ok := normalizeIndex(c.value, c.count())
	if !ok {
		if c.optional {
			return NoIndex
		}
		return 0
	}
	return n
}

// isSet reports whether an optional index holds a value in range.
func (c *indexController) isSet() bool {
	return c.get() != NoIndex
}
