package slider

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// defaultSettleDuration is how long an eased transition takes, in seconds.
const defaultSettleDuration float32 = 0.35

// Value is an animated scalar. Start either jumps to a target or eases
// toward it; Update advances the transition by a frame delta and reports
// progress through the OnChange and OnRest hooks.
//
// A transition started while another is still running continues from the
// current value with a decelerating curve, so a retarget mid-flight does not
// restart from rest.
type Value struct {
	value    float64
	target   float64
	velocity float64 // units per second, measured over the last Update

	tween    *gween.Tween
	moving   bool
	duration float32

	onChange func(float64)
	onRest   func(float64)
}

// NewValue creates a Value resting at v.
func NewValue(v float64) *Value {
	return &Value{value: v, target: v, duration: defaultSettleDuration}
}

// Get returns the current value.
func (v *Value) Get() float64 { return v.value }

// Target returns the value the current transition is heading to.
func (v *Value) Target() float64 { return v.target }

// Velocity returns the rate of change over the last Update in units/second.
func (v *Value) Velocity() float64 { return v.velocity }

// Animating reports whether an eased transition is in flight.
func (v *Value) Animating() bool { return v.moving }

// SetDuration changes the length of future eased transitions (seconds).
func (v *Value) SetDuration(seconds float32) { v.duration = seconds }

// OnChange registers the per-frame change hook. It replaces any previous one.
func (v *Value) OnChange(fn func(float64)) { v.onChange = fn }

// OnRest registers the hook fired when an eased transition finishes.
func (v *Value) OnRest(fn func(float64)) { v.onRest = fn }

// Start moves the value toward target. With immediate the value jumps, the
// change hook fires and any transition in flight is dropped without firing
// the rest hook.
func (v *Value) Start(target float64, immediate bool) {
	v.target = target
	if immediate {
		v.tween = nil
		v.moving = false
		v.velocity = 0
		v.set(target)
		return
	}

	fn := ease.InOutCubic
	if v.moving {
		fn = ease.OutCubic
	}
	d := v.duration
	if target == v.value {
		d = 0
	}
	v.tween = gween.New(float32(v.value), float32(target), d, fn)
	v.moving = true
}

// Update advances an eased transition by dt seconds.
func (v *Value) Update(dt float64) {
	if !v.moving {
		return
	}
	prev := v.value
	val, done := v.tween.Update(float32(dt))
	next := float64(val)
	if done {
		next = v.target
	}
	if dt > 0 {
		v.velocity = (next - prev) / dt
	}
	v.set(next)
	if done {
		v.tween = nil
		v.moving = false
		v.velocity = 0
		if v.onRest != nil {
			v.onRest(v.value)
		}
	}
}

func (v *Value) set(next float64) {
	if next == v.value {
		return
	}
	v.value = next
	if v.onChange != nil {
		v.onChange(next)
	}
}

// TweenGroup animates up to 2 float64 fields on a Node simultaneously.
// Create one via TweenAlpha or TweenScale and call Update(dt) each frame.
// The group writes values into the node and marks it dirty.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.target.MarkDirty()
}

// TweenScale animates node.ScaleX and node.ScaleY to the given values.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenAlpha animates node.Color.A to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Color.A), float32(to), duration, fn)
	g.fields[0] = &node.Color.A
	return g
}
