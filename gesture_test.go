package slider

import (
	"math"
	"testing"
	"time"
)

// fixedHit returns a hit test that finds node inside r and nothing outside.
func fixedHit(node *Node, r Rect) func(x, y float64) *Node {
	return func(x, y float64) *Node {
		if r.Contains(x, y) {
			return node
		}
		return nil
	}
}

func press(x, y float64) PointerSample   { return PointerSample{X: x, Y: y, Pressed: true} }
func release(x, y float64) PointerSample { return PointerSample{X: x, Y: y} }

func touch(id int, x, y float64, pressed bool) PointerSample {
	return PointerSample{ID: id, X: x, Y: y, Pressed: pressed}
}

// --- Taps ---

func TestRecognizerTap(t *testing.T) {
	node := NewContainer("n")
	r := NewRecognizer(fixedHit(node, Rect{Width: 100, Height: 100}))
	var tapped *Node
	r.OnTap = func(n *Node) { tapped = n }
	r.OnDrag = func(*DragGesture) { t.Error("tap should not drag") }

	r.Frame(frame, []PointerSample{press(10, 10)})
	if tapped != nil {
		t.Fatal("tap fired on press")
	}
	r.Frame(frame, []PointerSample{press(12, 11)}) // inside the dead zone
	r.Frame(frame, []PointerSample{release(12, 11)})
	if tapped != node {
		t.Errorf("tapped = %v, want node", tapped)
	}
}

func TestRecognizerMiss(t *testing.T) {
	r := NewRecognizer(fixedHit(NewContainer("n"), Rect{Width: 100, Height: 100}))
	var missX, missY float64
	missed := false
	r.OnTap = func(*Node) { t.Error("miss should not tap") }
	r.OnMiss = func(x, y float64) { missed, missX, missY = true, x, y }

	r.Frame(frame, []PointerSample{press(150, 20)})
	r.Frame(frame, []PointerSample{release(150, 20)})
	if !missed || missX != 150 || missY != 20 {
		t.Errorf("miss = %v at (%v, %v), want (150, 20)", missed, missX, missY)
	}
}

// --- Drags ---

func TestRecognizerDragLifecycle(t *testing.T) {
	node := NewContainer("n")
	r := NewRecognizer(fixedHit(node, Rect{Width: 400, Height: 100}))
	r.From = func(*Node) Vec2 { return Vec2{-100, 0} }
	var events []DragGesture
	r.OnDrag = func(g *DragGesture) { events = append(events, *g) }

	r.Frame(frame, []PointerSample{press(200, 50)})
	r.Frame(frame, []PointerSample{press(190, 50)})
	r.Frame(frame, []PointerSample{press(170, 50)})
	r.Frame(frame, []PointerSample{release(160, 50)})

	if len(events) != 3 {
		t.Fatalf("got %d drag events, want 3", len(events))
	}
	first, last := events[0], events[2]
	if !first.First || !first.Down || first.Target != node {
		t.Errorf("first event = %+v", first)
	}
	if first.Movement.X != -10 || first.Offset.X != -110 {
		t.Errorf("first movement = %v offset = %v, want -10 and -110", first.Movement.X, first.Offset.X)
	}
	if events[1].First {
		t.Error("second event flagged First")
	}
	if !last.Last || last.Down {
		t.Errorf("last event = %+v", last)
	}
	if last.Movement.X != -40 || last.Offset.X != -140 {
		t.Errorf("last movement = %v offset = %v, want -40 and -140", last.Movement.X, last.Offset.X)
	}
	if last.Direction.X != -1 {
		t.Errorf("direction = %v, want -1", last.Direction.X)
	}
	if r.Dragging() {
		t.Error("still dragging after release")
	}
}

func TestRecognizerDragVelocity(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	var last DragGesture
	r.OnDrag = func(g *DragGesture) { last = *g }

	r.Frame(frame, []PointerSample{press(100, 0)})
	r.Frame(frame, []PointerSample{press(80, 0)})
	want := 20.0 / 16
	if math.Abs(last.Velocity.X-want) > 1e-9 {
		t.Errorf("velocity = %v px/ms, want %v", last.Velocity.X, want)
	}
}

func TestRecognizerReleaseAfterPauseHasNoVelocity(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	var last DragGesture
	r.OnDrag = func(g *DragGesture) { last = *g }

	r.Frame(frame, []PointerSample{press(100, 0)})
	r.Frame(frame, []PointerSample{press(60, 0)})
	r.Frame(40*time.Millisecond, nil)
	r.Frame(frame, []PointerSample{release(60, 0)})

	if !last.Last {
		t.Fatal("expected a final drag event")
	}
	if last.Velocity.X != 0 {
		t.Errorf("velocity = %v, want 0 after a pause", last.Velocity.X)
	}
}

func TestRecognizerRubberbandAndClamp(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	r.Bounds = func(*Node) Bounds { return Bounds{Left: -100} }
	var events []DragGesture
	r.OnDrag = func(g *DragGesture) { events = append(events, *g) }

	r.Frame(frame, []PointerSample{press(0, 0)})
	r.Frame(frame, []PointerSample{press(50, 0)})
	r.Frame(frame, []PointerSample{release(50, 0)})

	over := events[0].Offset.X
	if over <= 0 || over >= 50 {
		t.Errorf("overscroll offset = %v, want damped into (0, 50)", over)
	}
	if events[1].Offset.X != 0 {
		t.Errorf("release offset = %v, want clamped to 0", events[1].Offset.X)
	}
}

func TestRubberbandIfOutOfBounds(t *testing.T) {
	tests := []struct {
		name           string
		pos, lo, hi, c float64
		wantLo, wantHi float64
	}{
		{"inside", -50, -100, 0, 0.15, -50, -50},
		{"zero constant clamps", 30, -100, 0, 0, 0, 0},
		{"past hi", 30, -100, 0, 0.15, 0.001, 29.999},
		{"past lo", -130, -100, 0, 0.15, -129.999, -100.001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rubberbandIfOutOfBounds(tt.pos, tt.lo, tt.hi, tt.c)
			if got < tt.wantLo || got > tt.wantHi {
				t.Errorf("rubberbandIfOutOfBounds(%v) = %v, want in [%v, %v]", tt.pos, got, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestRecognizerCancelSuppressesRest(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return NewContainer("n") })
	calls := 0
	r.OnDrag = func(g *DragGesture) {
		calls++
		g.Cancel()
	}
	r.OnTap = func(*Node) { t.Error("canceled drag should not tap") }

	r.Frame(frame, []PointerSample{press(0, 0)})
	r.Frame(frame, []PointerSample{press(20, 0)})
	r.Frame(frame, []PointerSample{press(40, 0)})
	r.Frame(frame, []PointerSample{release(40, 0)})
	if calls != 1 {
		t.Errorf("drag handler called %d times, want 1", calls)
	}

	// The next gesture starts fresh.
	r.Frame(frame, []PointerSample{press(0, 0)})
	r.Frame(frame, []PointerSample{press(20, 0)})
	if calls != 2 {
		t.Errorf("new gesture not delivered: calls = %d", calls)
	}
}

func TestRecognizerMemoResetsPerGesture(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	var memos []any
	r.OnDrag = func(g *DragGesture) {
		memos = append(memos, g.Memo)
		if g.First {
			g.Memo = "set"
		}
	}
	for range 2 {
		r.Frame(frame, []PointerSample{press(0, 0)})
		r.Frame(frame, []PointerSample{press(20, 0)})
		r.Frame(frame, []PointerSample{release(30, 0)})
	}
	want := []any{nil, "set", nil, "set"}
	if len(memos) != len(want) {
		t.Fatalf("memos = %v", memos)
	}
	for i := range want {
		if memos[i] != want[i] {
			t.Errorf("memo[%d] = %v, want %v", i, memos[i], want[i])
		}
	}
}

// --- Pinch ---

func TestRecognizerPinch(t *testing.T) {
	node := NewContainer("n")
	r := NewRecognizer(fixedHit(node, Rect{Width: 400, Height: 100}))
	r.PinchFrom = func(*Node) float64 { return 1 }
	var events []PinchGesture
	r.OnPinch = func(g *PinchGesture) { events = append(events, *g) }

	r.Frame(frame, []PointerSample{touch(1, 150, 50, true), touch(2, 250, 50, true)})
	r.Frame(frame, []PointerSample{touch(1, 100, 50, true), touch(2, 300, 50, true)})
	r.Frame(frame, []PointerSample{touch(1, 100, 50, false), touch(2, 300, 50, false)})

	if len(events) != 3 {
		t.Fatalf("got %d pinch events, want 3", len(events))
	}
	if !events[0].First || events[0].Target != node || events[0].Origin != (Vec2{200, 50}) {
		t.Errorf("first pinch event = %+v", events[0])
	}
	if events[1].Movement != 2 || events[1].Offset != 2 || !events[1].Active {
		t.Errorf("movement = %v offset = %v", events[1].Movement, events[1].Offset)
	}
	if !events[2].Last || events[2].Active {
		t.Errorf("last pinch event = %+v", events[2])
	}
	if r.Pinching() {
		t.Error("still pinching after release")
	}
}

func TestRecognizerPinchOffsetClamped(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	var last PinchGesture
	r.OnPinch = func(g *PinchGesture) { last = *g }

	r.Frame(frame, []PointerSample{touch(1, 0, 0, true), touch(2, 10, 0, true)})
	r.Frame(frame, []PointerSample{touch(1, 0, 0, true), touch(2, 1000, 0, true)})
	if last.Offset != r.ScaleBounds.Max {
		t.Errorf("offset = %v, want clamped to %v", last.Offset, r.ScaleBounds.Max)
	}
	r.Frame(frame, []PointerSample{touch(2, 1, 0, true)})
	if last.Offset != r.ScaleBounds.Min {
		t.Errorf("offset = %v, want clamped to %v", last.Offset, r.ScaleBounds.Min)
	}
}

func TestRecognizerPinchCutsDrag(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	var drags []DragGesture
	pinches := 0
	r.OnDrag = func(g *DragGesture) { drags = append(drags, *g) }
	r.OnPinch = func(*PinchGesture) { pinches++ }

	r.Frame(frame, []PointerSample{touch(1, 100, 0, true)})
	r.Frame(frame, []PointerSample{touch(1, 120, 0, true)})
	r.Frame(frame, []PointerSample{touch(2, 200, 0, true)})

	if len(drags) != 2 {
		t.Fatalf("got %d drag events, want 2", len(drags))
	}
	cut := drags[1]
	if !cut.Last || !cut.Canceled || cut.Velocity != (Vec2{}) {
		t.Errorf("cut event = %+v", cut)
	}
	if pinches != 1 || r.Dragging() {
		t.Errorf("pinches = %d dragging = %v", pinches, r.Dragging())
	}
}

func TestRecognizerPinchCancel(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	calls := 0
	r.OnPinch = func(g *PinchGesture) {
		calls++
		g.Cancel()
	}
	r.Frame(frame, []PointerSample{touch(1, 0, 0, true), touch(2, 10, 0, true)})
	r.Frame(frame, []PointerSample{touch(2, 50, 0, true)})
	r.Frame(frame, []PointerSample{touch(1, 0, 0, false), touch(2, 50, 0, false)})
	if calls != 1 {
		t.Errorf("pinch handler called %d times, want 1", calls)
	}
}

// --- Injection ---

func TestInjectClick(t *testing.T) {
	node := NewContainer("n")
	r := NewRecognizer(fixedHit(node, Rect{Width: 100, Height: 100}))
	clicked := false
	r.OnTap = func(n *Node) { clicked = n == node }

	r.InjectClick(50, 50)
	if r.Pending() != 2 {
		t.Fatalf("expected 2 queued frames, got %d", r.Pending())
	}
	r.Poll(frame)
	if clicked {
		t.Error("click should not fire on press frame")
	}
	r.Poll(frame)
	if r.Pending() != 0 || !clicked {
		t.Errorf("pending = %d clicked = %v", r.Pending(), clicked)
	}
}

func TestInjectDrag(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	var events []DragGesture
	r.OnDrag = func(g *DragGesture) { events = append(events, *g) }

	r.InjectDrag(10, 10, 200, 10, 5)
	if r.Pending() != 5 {
		t.Fatalf("expected 5 queued frames, got %d", r.Pending())
	}
	for range 5 {
		r.Poll(frame)
	}
	if len(events) < 2 {
		t.Fatalf("expected at least 2 drag events, got %d", len(events))
	}
	if !events[0].First || !events[len(events)-1].Last {
		t.Error("drag should start First and end Last")
	}
	if events[len(events)-1].Movement.X != 190 {
		t.Errorf("movement = %v, want 190", events[len(events)-1].Movement.X)
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	r := NewRecognizer(nil)
	r.InjectDrag(0, 0, 100, 100, 1)
	if r.Pending() != 2 {
		t.Fatalf("expected 2 queued frames (clamped), got %d", r.Pending())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	r := NewRecognizer(nil)
	r.InjectPress(10, 20)
	r.InjectMove(30, 40)
	r.InjectRelease(50, 60)
	r.InjectWait(2)

	want := []struct {
		n       int
		x       float64
		pressed bool
	}{
		{1, 10, true}, {1, 30, true}, {1, 50, false}, {0, 0, false}, {0, 0, false},
	}
	for i, w := range want {
		f, ok := r.popInjected()
		if !ok || len(f) != w.n {
			t.Fatalf("frame %d = %v, want %d samples", i, f, w.n)
		}
		if w.n > 0 && (f[0].X != w.x || f[0].Pressed != w.pressed) {
			t.Errorf("frame %d = %+v", i, f[0])
		}
	}
	if _, ok := r.popInjected(); ok {
		t.Error("queue should be empty")
	}
}

func TestInjectPinch(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	var last PinchGesture
	r.OnPinch = func(g *PinchGesture) { last = *g }

	r.InjectPinch(200, 100, 100, 200, 4)
	if r.Pending() != 4 {
		t.Fatalf("expected 4 queued frames, got %d", r.Pending())
	}
	for range 4 {
		r.Poll(frame)
	}
	if !last.Last || last.Movement != 2 {
		t.Errorf("last pinch = %+v, want movement 2 and Last", last)
	}
}

func TestRecognizerReset(t *testing.T) {
	r := NewRecognizer(func(x, y float64) *Node { return nil })
	r.OnDrag = func(*DragGesture) {}
	r.Frame(frame, []PointerSample{press(0, 0)})
	r.Frame(frame, []PointerSample{press(20, 0)})
	r.InjectClick(1, 1)
	r.Reset()
	if r.Dragging() || r.Pending() != 0 {
		t.Errorf("dragging = %v pending = %d after reset", r.Dragging(), r.Pending())
	}
}
