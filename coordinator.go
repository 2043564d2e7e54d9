package slider

import (
	"math"
	"slices"
)

// Pinch release snaps back to the identity inside this scale band.
const (
	pinchSnapMin = 0.7
	pinchSnapMax = 1.3
)

// zoomPanMemo is the drag memo of a gesture panning a zoomed item.
type zoomPanMemo struct {
	index int
	x, y  float64
}

// pagePanMemo is the drag memo of a gesture panning the page.
type pagePanMemo struct{}

// pinchMemo anchors a pinch: the item translation at the start and the
// pinch origin relative to the item center.
type pinchMemo struct {
	index  int
	x, y   float64
	tx, ty float64
}

// hitTest returns the topmost node of the slider under a screen point.
func (s *Slider) hitTest(x, y float64) *Node {
	if !s.bounds.Contains(x, y) {
		return nil
	}
	var hit *Node
	hit, s.hitBuf = hitTest(s.root, x, y, s.hitBuf)
	return hit
}

// resolveTarget walks up from n until it finds an item target and returns
// its index. A hit on the container itself resolves to the only item when
// there is exactly one. Returns -1 when nothing resolves.
func (s *Slider) resolveTarget(n *Node) int {
	for p := n; p != nil; p = p.Parent {
		if i := slices.Index(s.targets, p); i >= 0 {
			return i
		}
	}
	if n != nil && (n == s.frame || n == s.track || n == s.root) && len(s.targets) == 1 {
		return 0
	}
	return -1
}

// isZoomed reports whether item i is scaled up.
func (s *Slider) isZoomed(i int) bool {
	return s.itemAnim.get(i).Scale > 1
}

// dragBounds limits page drags to the scrollable range. Zoomed or scaled
// items pan freely.
func (s *Slider) dragBounds(target *Node) Bounds {
	if i := s.resolveTarget(target); i >= 0 && s.itemAnim.get(i).Scale != 1 {
		return Unbounded
	}
	slot := s.dims.slotSize()
	left := slot*float64(s.Len()) - slot*float64(s.dims.itemsPerPage())
	if left <= 0 {
		left = 0
	} else {
		left = -left
	}
	return Bounds{Left: left}
}

// dragFrom is where a drag's offset starts: the track position for page
// drags, the origin for zoomed items.
func (s *Slider) dragFrom(target *Node) Vec2 {
	if i := s.resolveTarget(target); i >= 0 && s.itemAnim.get(i).Scale != 1 {
		return Vec2{}
	}
	return Vec2{s.scroll.x.Get(), 0}
}

func (s *Slider) pinchFrom(target *Node) float64 {
	if i := s.resolveTarget(target); i >= 0 {
		return s.itemAnim.get(i).Scale
	}
	return 1
}

// onDrag pans either a zoomed item or the page.
func (s *Slider) onDrag(g *DragGesture) {
	switch memo := g.Memo.(type) {
	case zoomPanMemo:
		s.panItem(g, memo)
		return
	case pagePanMemo:
		s.panPage(g)
		return
	}

	// First event of the gesture: decide what it moves.
	if !s.Ready() || s.Len() == 0 {
		g.Cancel()
		return
	}
	idx := s.resolveTarget(g.Target)
	if idx < 0 {
		s.debugf("drag: no item under pointer, gesture dropped")
		g.Cancel()
		return
	}
	s.emit(Event{Type: EventDragStart, Index: idx, First: s.view.first, Offset: g.Offset.X})
	if s.isZoomed(idx) {
		t := s.itemAnim.get(idx)
		memo := zoomPanMemo{index: idx, x: t.X, y: t.Y}
		g.Memo = memo
		s.debugf("drag: pan zoomed item %d", idx)
		s.panItem(g, memo)
		return
	}
	g.Memo = pagePanMemo{}
	s.debugf("drag: pan page from item %d", idx)
	s.panPage(g)
}

func (s *Slider) panItem(g *DragGesture, memo zoomPanMemo) {
	t := s.itemAnim.get(memo.index)
	s.itemAnim.start(memo.index, ItemTransform{
		X:     memo.x + g.Movement.X,
		Y:     memo.y + g.Movement.Y,
		Scale: t.Scale,
	}, g.Down)
	if g.Last {
		s.emit(Event{Type: EventDragEnd, Index: memo.index, First: s.view.first})
	}
}

// panPage follows the pointer while down and settles on a page boundary on
// release.
func (s *Slider) panPage(g *DragGesture) {
	slot := s.dims.slotSize()
	if g.Down {
		s.phase = DragStarting
		s.scroll.animateTo(g.Offset.X, true)
		return
	}

	count, perPage := s.Len(), s.dims.itemsPerPage()
	target := s.view.first
	if !g.Canceled && slot > 0 {
		target = releaseTarget(g.Offset.X, g.Movement.X, g.Velocity.X, slot, count, perPage)
	}
	s.phase = Dragging
	s.debugf("drag: release at %.1f (v=%.2f px/ms) -> first %d", g.Offset.X, g.Velocity.X, target)
	s.scroll.animateTo(restPosition(target, slot), false)
	s.emit(Event{Type: EventDragEnd, Index: s.index.get(), First: target, Offset: g.Offset.X})
}

// releaseTarget is the first index a page drag settles on: the nearest page
// boundary to offset, moved by half the release speed in the drag direction
// and clamped to the valid range.
func releaseTarget(offset, movementX, velocity, slot float64, count, perPage int) int {
	first := int(math.Round(math.Abs(offset) / slot))
	speed := int(math.Round(velocity / 2))
	if movementX < 0 {
		first += speed
	} else {
		first -= speed
	}
	return clampFirst(first, count, perPage)
}

// onPinch scales the item under the fingers around the pinch origin.
func (s *Slider) onPinch(g *PinchGesture) {
	if !s.withScaling || len(s.targets) == 0 || !s.Ready() {
		g.Cancel()
		return
	}
	memo, ok := g.Memo.(pinchMemo)
	if !ok {
		idx := s.resolveTarget(g.Target)
		if idx < 0 {
			g.Cancel()
			return
		}
		c := s.targets[idx].WorldRect().Center()
		t := s.itemAnim.get(idx)
		memo = pinchMemo{index: idx, x: t.X, y: t.Y, tx: g.Origin.X - c.X, ty: g.Origin.Y - c.Y}
		g.Memo = memo
	}

	next := pinchTransform(memo, g.Movement, g.Offset, g.Active)
	s.itemAnim.start(memo.index, next, g.Active)
	s.emit(Event{Type: EventPinch, Index: memo.index, First: s.view.first, Scale: next.Scale})
}

// pinchTransform keeps the pinch origin under the fingers while scaling.
// A released pinch close to the original size returns to the identity.
func pinchTransform(memo pinchMemo, movement, scale float64, active bool) ItemTransform {
	if !active && scale >= pinchSnapMin && scale < pinchSnapMax {
		return IdentityTransform
	}
	return ItemTransform{
		X:     memo.x - (movement-1)*memo.tx,
		Y:     memo.y - (movement-1)*memo.ty,
		Scale: scale,
	}
}

// onTap handles taps on the controls and on items.
func (s *Slider) onTap(target *Node) {
	switch {
	case isWithin(target, s.prevBtn):
		s.Previous()
	case isWithin(target, s.nextBtn):
		s.Next()
	default:
		idx := s.resolveTarget(target)
		if idx < 0 {
			return
		}
		s.emit(Event{Type: EventTap, Index: idx, First: s.view.first})
		if s.onItemTap != nil {
			s.onItemTap(idx)
		}
	}
}

// isWithin reports whether n is root or one of its descendants.
func isWithin(n, root *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// onScroll runs on every change of the track translation. While a gesture
// owns the track it keeps the window and the active index in step with the
// live position.
func (s *Slider) onScroll(x float64) {
	if s.phase == Settled {
		return
	}
	count, perPage := s.Len(), s.dims.itemsPerPage()
	if count == 0 || perPage < 1 {
		return
	}
	first := liveFirst(x, s.dims.slotSize(), count, perPage)
	s.view.setFirst(first)
	if a, ok := correctActive(s.index.get(), first, perPage); ok {
		s.view.lock = lockPlaced
		s.index.set(a)
	}
}

func (s *Slider) onScrollRest(float64) {
	if s.phase == Dragging {
		s.phase = Settled
	}
}
