package slider

import (
	"math"
	"time"
)

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
	defaultRubberband   = 0.15

	// A release this long after the last movement carries no velocity.
	velocityWindow = 32 * time.Millisecond
)

// PointerSample is one reading of one pointer. Pointer 0 is the mouse,
// 1-9 are touches.
type PointerSample struct {
	ID      int
	X, Y    float64
	Pressed bool
}

// DragGesture is the state of a drag, passed to the drag handler on every
// change. The same value is reused for the whole gesture; Memo survives
// between events of one gesture and is reset when the next one starts.
type DragGesture struct {
	Target    *Node
	PointerID int

	First bool // first event of the gesture
	Last  bool // final event: the pointer was released or the drag was cut
	Down  bool
	// Canceled is set on the final event of a drag cut short by a pinch.
	Canceled bool

	Initial   Vec2 // press position
	XY        Vec2 // current position
	Movement  Vec2 // XY - Initial
	Offset    Vec2 // From + Movement, rubber-banded while down, clamped on release
	Velocity  Vec2 // px/ms, magnitude per axis
	Direction Vec2 // -1, 0 or 1 per axis

	Bounds Bounds
	From   Vec2
	Memo   any

	canceled bool
}

// Cancel stops the gesture. No further events are delivered for it, and
// the pointer stays inert until it is released.
func (g *DragGesture) Cancel() {
	g.canceled = true
}

// PinchGesture is the state of a two-finger pinch.
type PinchGesture struct {
	Target *Node

	First  bool
	Last   bool
	Active bool

	Origin   Vec2    // midpoint of the two pointers
	Movement float64 // distance ratio since the gesture started
	Offset   float64 // From * Movement, clamped to the scale bounds
	From     float64
	Memo     any

	canceled bool
}

// Cancel stops the pinch until one of its pointers is released.
func (g *PinchGesture) Cancel() {
	g.canceled = true
}

// --- Per-pointer state ---

type pointerState struct {
	down       bool
	dragging   bool
	suppressed bool // part of a pinch or a canceled drag
	start      Vec2
	last       Vec2
	hitNode    *Node
	lastMove   time.Duration
}

// --- Pinch state ---

type pinchState struct {
	active      bool
	canceled    bool
	pointer0    int
	pointer1    int
	initialDist float64
}

// Recognizer turns pointer samples into drag, pinch and tap callbacks.
//
// It is fed once per frame through Frame (or Poll, which reads Ebitengine
// input and the inject queue). Time only advances through the frame delta.
type Recognizer struct {
	// DeadZone is the distance a pointer must travel before a press becomes
	// a drag. Releases inside it are taps.
	DeadZone float64
	// Rubberband is the overscroll resistance constant. Zero clamps.
	Rubberband float64
	// ScaleBounds limits the pinch offset.
	ScaleBounds Range

	// Bounds and From are evaluated once when a drag starts.
	Bounds func(target *Node) Bounds
	From   func(target *Node) Vec2
	// PinchFrom returns the scale a pinch on target starts from.
	PinchFrom func(target *Node) float64

	OnDrag  func(g *DragGesture)
	OnPinch func(g *PinchGesture)
	OnTap   func(target *Node)
	// OnMiss is called for a tap that hit no node.
	OnMiss func(x, y float64)

	hitTest func(x, y float64) *Node

	clock       time.Duration
	pointers    [maxPointers]pointerState
	drag        DragGesture
	dragPointer int
	pinch       pinchState
	pinchEvent  PinchGesture

	touches     touchSlots
	injectQueue [][]PointerSample
	samples     []PointerSample
}

// NewRecognizer creates a recognizer. hitTest resolves the node under a
// point; it may return nil.
func NewRecognizer(hitTest func(x, y float64) *Node) *Recognizer {
	return &Recognizer{
		DeadZone:    defaultDragDeadZone,
		Rubberband:  defaultRubberband,
		ScaleBounds: Range{Min: 0.7, Max: 5},
		hitTest:     hitTest,
		dragPointer: -1,
	}
}

// Dragging reports whether a drag gesture is in progress.
func (r *Recognizer) Dragging() bool {
	return r.dragPointer >= 0
}

// Pinching reports whether a pinch gesture is in progress.
func (r *Recognizer) Pinching() bool {
	return r.pinch.active
}

// Poll runs one frame from real input, or from the inject queue when it
// holds events. Injected frames replace real input for that frame.
func (r *Recognizer) Poll(dt time.Duration) {
	if samples, ok := r.popInjected(); ok {
		r.Frame(dt, samples)
		return
	}
	r.samples = r.readEbitenInput(r.samples[:0])
	r.Frame(dt, r.samples)
}

// Frame advances the clock by dt and processes the given samples in order.
// Pointers absent from samples keep their previous state.
func (r *Recognizer) Frame(dt time.Duration, samples []PointerSample) {
	r.clock += dt
	for _, s := range samples {
		if s.ID < 0 || s.ID >= maxPointers {
			continue
		}
		r.processPointer(s.ID, Vec2{s.X, s.Y}, s.Pressed)
	}
	r.detectPinch()
}

// Reset drops every pointer and gesture without firing callbacks.
func (r *Recognizer) Reset() {
	r.pointers = [maxPointers]pointerState{}
	r.drag = DragGesture{}
	r.dragPointer = -1
	r.pinch = pinchState{}
	r.injectQueue = r.injectQueue[:0]
}

// processPointer runs the pointer state machine for a single pointer.
func (r *Recognizer) processPointer(id int, p Vec2, pressed bool) {
	ps := &r.pointers[id]

	switch {
	case pressed && !ps.down:
		var hit *Node
		if r.hitTest != nil {
			hit = r.hitTest(p.X, p.Y)
		}
		*ps = pointerState{down: true, start: p, last: p, hitNode: hit, lastMove: r.clock}

	case pressed && ps.down:
		if p == ps.last {
			return
		}
		prev := ps.last
		ps.last = p
		if ps.suppressed || r.pinch.active {
			return
		}
		if !ps.dragging {
			if distance(ps.start, p) <= r.DeadZone || r.dragPointer >= 0 {
				return
			}
			r.beginDrag(id, ps)
		}
		r.moveDrag(ps, prev, p)

	case !pressed && ps.down:
		prev := ps.last
		ps.last = p
		switch {
		case ps.suppressed:
		case ps.dragging:
			r.endDrag(ps, prev, p)
		case r.pinch.active:
		case distance(ps.start, p) > r.DeadZone:
			// Pressed and released far apart with no move in between.
			if r.dragPointer < 0 {
				r.beginDrag(id, ps)
				r.moveDrag(ps, prev, p)
				if ps.dragging {
					r.endDrag(ps, p, p)
				}
			}
		case ps.hitNode != nil:
			if r.OnTap != nil {
				r.OnTap(ps.hitNode)
			}
		default:
			if r.OnMiss != nil {
				r.OnMiss(p.X, p.Y)
			}
		}
		ps.down = false
		ps.dragging = false
		ps.suppressed = false
		ps.hitNode = nil
	}
}

// --- Drag ---

func (r *Recognizer) beginDrag(id int, ps *pointerState) {
	b := Unbounded
	if r.Bounds != nil {
		b = r.Bounds(ps.hitNode)
	}
	var from Vec2
	if r.From != nil {
		from = r.From(ps.hitNode)
	}
	ps.dragging = true
	r.dragPointer = id
	r.drag = DragGesture{
		Target:    ps.hitNode,
		PointerID: id,
		First:     true,
		Down:      true,
		Initial:   ps.start,
		XY:        ps.start,
		Offset:    from,
		Bounds:    b,
		From:      from,
	}
}

// track updates position, movement and kinematics from one movement step.
func (r *Recognizer) track(ps *pointerState, prev, p Vec2) {
	g := &r.drag
	delta := Vec2{p.X - prev.X, p.Y - prev.Y}
	if elapsed := r.clock - ps.lastMove; elapsed > 0 {
		ms := float64(elapsed) / float64(time.Millisecond)
		g.Velocity = Vec2{math.Abs(delta.X) / ms, math.Abs(delta.Y) / ms}
	}
	if delta.X != 0 {
		g.Direction.X = math.Copysign(1, delta.X)
	}
	if delta.Y != 0 {
		g.Direction.Y = math.Copysign(1, delta.Y)
	}
	ps.lastMove = r.clock

	g.XY = p
	g.Movement = Vec2{p.X - g.Initial.X, p.Y - g.Initial.Y}
}

func (r *Recognizer) moveDrag(ps *pointerState, prev, p Vec2) {
	r.track(ps, prev, p)
	g := &r.drag
	c := r.Rubberband
	g.Offset = Vec2{
		rubberbandIfOutOfBounds(g.From.X+g.Movement.X, g.Bounds.Left, g.Bounds.Right, c),
		rubberbandIfOutOfBounds(g.From.Y+g.Movement.Y, g.Bounds.Top, g.Bounds.Bottom, c),
	}
	r.fireDrag(ps)
	g.First = false
}

func (r *Recognizer) endDrag(ps *pointerState, prev, p Vec2) {
	g := &r.drag
	if p != prev {
		r.track(ps, prev, p)
	} else if r.clock-ps.lastMove > velocityWindow {
		g.Velocity = Vec2{}
	}
	g.Down = false
	g.Last = true
	g.Offset = Vec2{
		clampRange(g.From.X+g.Movement.X, g.Bounds.Left, g.Bounds.Right),
		clampRange(g.From.Y+g.Movement.Y, g.Bounds.Top, g.Bounds.Bottom),
	}
	r.fireDrag(ps)
	ps.dragging = false
	r.dragPointer = -1
}

// cutDrag ends a drag in progress because a pinch took over.
func (r *Recognizer) cutDrag() {
	if r.dragPointer < 0 {
		return
	}
	ps := &r.pointers[r.dragPointer]
	g := &r.drag
	g.Down = false
	g.Last = true
	g.Canceled = true
	g.Velocity = Vec2{}
	r.fireDrag(ps)
	ps.dragging = false
	ps.suppressed = true
	r.dragPointer = -1
}

func (r *Recognizer) fireDrag(ps *pointerState) {
	if r.OnDrag != nil {
		r.OnDrag(&r.drag)
	}
	if r.drag.canceled {
		r.drag.canceled = false
		ps.dragging = false
		ps.suppressed = true
		r.dragPointer = -1
	}
}

// --- Pinch ---

func (r *Recognizer) detectPinch() {
	var ids [2]int
	count := 0
	for i := 1; i < maxPointers; i++ {
		if r.pointers[i].down {
			if count < 2 {
				ids[count] = i
			}
			count++
		}
	}

	if r.pinch.active {
		p0, p1 := &r.pointers[r.pinch.pointer0], &r.pointers[r.pinch.pointer1]
		if p0.down && p1.down {
			if !r.pinch.canceled {
				r.updatePinch(p0.last, p1.last, false)
			}
			return
		}
		if !r.pinch.canceled {
			g := &r.pinchEvent
			g.First = false
			g.Last = true
			g.Active = false
			r.firePinch()
		}
		r.pinch = pinchState{}
		return
	}

	if count < 2 {
		return
	}
	r.cutDrag()
	p0, p1 := &r.pointers[ids[0]], &r.pointers[ids[1]]
	p0.suppressed = true
	p1.suppressed = true

	r.pinch = pinchState{
		active:      true,
		pointer0:    ids[0],
		pointer1:    ids[1],
		initialDist: distance(p0.last, p1.last),
	}
	from := 1.0
	if r.PinchFrom != nil {
		from = r.PinchFrom(p0.hitNode)
	}
	r.pinchEvent = PinchGesture{Target: p0.hitNode, From: from}
	r.updatePinch(p0.last, p1.last, true)
}

func (r *Recognizer) updatePinch(a, b Vec2, first bool) {
	g := &r.pinchEvent
	origin := Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	m := 1.0
	if r.pinch.initialDist > 0 {
		m = distance(a, b) / r.pinch.initialDist
	}
	if !first && origin == g.Origin && m == g.Movement {
		return
	}
	g.First = first
	g.Last = false
	g.Active = true
	g.Origin = origin
	g.Movement = m
	g.Offset = r.ScaleBounds.Clamp(g.From * m)
	r.firePinch()
}

func (r *Recognizer) firePinch() {
	if r.OnPinch != nil {
		r.OnPinch(&r.pinchEvent)
	}
	if r.pinchEvent.canceled {
		r.pinchEvent.canceled = false
		r.pinch.canceled = true
	}
}

// --- Math ---

func distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func clampRange(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// rubberband maps an overflow distance beyond a bound to a damped one.
func rubberband(distance, dimension, constant float64) float64 {
	if dimension == 0 || math.IsInf(dimension, 0) {
		return math.Pow(distance, constant*5)
	}
	return (distance * dimension * constant) / (dimension + constant*distance)
}

// rubberbandIfOutOfBounds returns position unchanged inside [lo, hi] and
// damped beyond it. A zero constant clamps.
func rubberbandIfOutOfBounds(position, lo, hi, constant float64) float64 {
	if constant == 0 {
		return clampRange(position, lo, hi)
	}
	if position < lo {
		return -rubberband(lo-position, hi-lo, constant) + lo
	}
	if position > hi {
		return rubberband(position-hi, hi-lo, constant) + hi
	}
	return position
}
