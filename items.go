package slider

import "strconv"

// ItemTransform is the pinch/zoom transform of one item. The zero value is
// not the identity; use IdentityTransform.
type ItemTransform struct {
	X, Y, Scale float64
}

// IdentityTransform leaves an item untouched.
var IdentityTransform = ItemTransform{Scale: 1}

// IsIdentity reports whether t is exactly (0, 0, 1).
func (t ItemTransform) IsIdentity() bool {
	return t == IdentityTransform
}

// itemSpring is the animated transform of one item.
type itemSpring struct {
	key         string
	x, y, scale *Value
}

func newItemSpring(key string) *itemSpring {
	return &itemSpring{key: key, x: NewValue(0), y: NewValue(0), scale: NewValue(1)}
}

func (s *itemSpring) get() ItemTransform {
	return ItemTransform{X: s.x.Get(), Y: s.y.Get(), Scale: s.scale.Get()}
}

func (s *itemSpring) start(t ItemTransform, immediate bool) {
	s.x.Start(t.X, immediate)
	s.y.Start(t.Y, immediate)
	s.scale.Start(t.Scale, immediate)
}

func (s *itemSpring) update(dt float64) {
	s.x.Update(dt)
	s.y.Update(dt)
	s.scale.Update(dt)
}

// itemAnimator holds one transform per item, addressed by index.
type itemAnimator struct {
	springs []*itemSpring
}

// resize matches the animator to a new item list. Items with a stable key
// keep their transform when they move; everything else is positional.
func (a *itemAnimator) resize(keys []string) {
	byKey := make(map[string]*itemSpring, len(a.springs))
	for _, s := range a.springs {
		if s.key != "" {
			byKey[s.key] = s
		}
	}
	next := make([]*itemSpring, len(keys))
	for i, k := range keys {
		switch {
		case k != "" && byKey[k] != nil:
			next[i] = byKey[k]
			delete(byKey, k)
		case k == "" && i < len(a.springs) && a.springs[i].key == "":
			next[i] = a.springs[i]
		default:
			next[i] = newItemSpring(k)
		}
	}
	a.springs = next
}

func (a *itemAnimator) len() int {
	return len(a.springs)
}

// get returns the current transform of item i, or the identity when i is out
// of range.
func (a *itemAnimator) get(i int) ItemTransform {
	if i < 0 || i >= len(a.springs) {
		return IdentityTransform
	}
	return a.springs[i].get()
}

// start animates item i toward t.
func (a *itemAnimator) start(i int, t ItemTransform, immediate bool) {
	if i < 0 || i >= len(a.springs) {
		return
	}
	a.springs[i].start(t, immediate)
}

// onWindow snaps every item outside [first, first+perPage) back to the
// identity.
func (a *itemAnimator) onWindow(first, perPage int) {
	for i, s := range a.springs {
		if isVisible(i, first, perPage) {
			continue
		}
		if !s.get().IsIdentity() || s.x.Animating() || s.y.Animating() || s.scale.Animating() {
			s.start(IdentityTransform, true)
		}
	}
}

func (a *itemAnimator) update(dt float64) {
	for _, s := range a.springs {
		s.update(dt)
	}
}

// itemKeys returns the stable key of every item, or "" for items without one.
func itemKeys(items []*Node) []string {
	keys := make([]string, len(items))
	for i, n := range items {
		keys[i] = n.Key
	}
	return keys
}

// positionalKey is the name given to an item wrapper without a stable key.
func positionalKey(i int) string {
	return "item-" + strconv.Itoa(i)
}
