package slider

import "math"

// Injected input is queued one frame at a time. Each queued frame replaces
// real input for the frame it is consumed on, so a script can drive gestures
// deterministically with no window.

func (r *Recognizer) queueFrame(samples ...PointerSample) {
	r.injectQueue = append(r.injectQueue, samples)
}

// popInjected removes the oldest queued frame.
func (r *Recognizer) popInjected() ([]PointerSample, bool) {
	if len(r.injectQueue) == 0 {
		return nil, false
	}
	f := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue[len(r.injectQueue)-1] = nil
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]
	return f, true
}

// Pending returns the number of queued injected frames.
func (r *Recognizer) Pending() int {
	return len(r.injectQueue)
}

// InjectPress queues a mouse press at the given screen coordinates.
func (r *Recognizer) InjectPress(x, y float64) {
	r.queueFrame(PointerSample{ID: 0, X: x, Y: y, Pressed: true})
}

// InjectMove queues a mouse move with the button held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (r *Recognizer) InjectMove(x, y float64) {
	r.queueFrame(PointerSample{ID: 0, X: x, Y: y, Pressed: true})
}

// InjectRelease queues a mouse release at the given screen coordinates.
func (r *Recognizer) InjectRelease(x, y float64) {
	r.queueFrame(PointerSample{ID: 0, X: x, Y: y})
}

// InjectWait queues frames with no input change.
func (r *Recognizer) InjectWait(frames int) {
	for i := 0; i < frames; i++ {
		r.queueFrame()
	}
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (r *Recognizer) InjectClick(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), moves linearly
// interpolated over frames-2 intermediate frames, and release at (toX, toY).
// Minimum frames is 2 (press + release).
func (r *Recognizer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY)
}

// InjectPinch queues a two-finger pinch centred on (cx, cy). The fingers sit
// on a horizontal line, fromDist apart at the start and toDist apart at the
// end, moving over frames-2 intermediate frames. Touch slots 1 and 2 are
// used.
func (r *Recognizer) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	fingers := func(d float64, pressed bool) []PointerSample {
		h := math.Abs(d) / 2
		return []PointerSample{
			{ID: 1, X: cx - h, Y: cy, Pressed: pressed},
			{ID: 2, X: cx + h, Y: cy, Pressed: pressed},
		}
	}
	r.queueFrame(fingers(fromDist, true)...)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.queueFrame(fingers(fromDist+(toDist-fromDist)*t, true)...)
	}
	r.queueFrame(fingers(toDist, false)...)
}
