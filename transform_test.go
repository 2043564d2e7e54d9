package slider

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	got := computeLocalTransform(n)
	assertMatrix(t, "identity", got, [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.X = 10
	n.Y = 20
	got := computeLocalTransform(n)
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX = 2
	n.ScaleY = 3
	got := computeLocalTransform(n)
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewContainer("test")
	n.PivotX, n.PivotY = 50, 25
	n.ScaleX, n.ScaleY = 2, 2
	got := computeLocalTransform(n)
	// The pivot stays in place: 50 - 2*50 = -50.
	assertMatrix(t, "pivot", got, [6]float64{2, 0, 0, 2, -50, -25})
	x, y := transformPoint(got, 50, 25)
	assertNear(t, "pivot.x", x, 50)
	assertNear(t, "pivot.y", y, 25)
}

// --- multiplyAffine / invertAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 7}
	assertMatrix(t, "a*b", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 27})
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, -8}
	assertMatrix(t, "m*inv", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 5, 5}), identityTransform)
}

// --- updateWorldTransform ---

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10

	updateWorldTransform(parent, identityTransform, false)

	assertNear(t, "parent.tx", parent.worldTransform[4], 100)
	assertNear(t, "child.tx", child.worldTransform[4], 110)
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, false)

	child.X = 999 // dirty flag NOT set
	updateWorldTransform(parent, identityTransform, false)

	assertNear(t, "child.tx (stale)", child.worldTransform[4], 110)
}

func TestDirtyFlagRecomputes(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, false)

	child.SetPosition(20, 0)
	updateWorldTransform(parent, identityTransform, false)

	assertNear(t, "child.tx (updated)", child.worldTransform[4], 120)
}

func TestParentRecomputedPropagates(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, false)

	parent.SetPosition(200, 0)
	updateWorldTransform(parent, identityTransform, false)

	assertNear(t, "child.tx (from parent)", child.worldTransform[4], 210)
}

func TestSetScaleUnchangedKeepsClean(t *testing.T) {
	n := NewContainer("n")
	updateWorldTransform(n, identityTransform, false)
	n.SetScale(1, 1)
	n.SetPosition(0, 0)
	if n.transformDirty {
		t.Error("setting unchanged values should not mark the node dirty")
	}
}

// --- WorldToLocal / LocalToWorld / WorldRect ---

func TestWorldToLocalRoundtrip(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X, parent.Y = 100, 50
	child.X, child.Y = 10, 20
	child.ScaleX, child.ScaleY = 2, 3

	updateWorldTransform(parent, identityTransform, false)

	wx, wy := 150.0, 80.0
	lx, ly := child.WorldToLocal(wx, wy)
	wx2, wy2 := child.LocalToWorld(lx, ly)
	assertNear(t, "roundtrip.x", wx2, wx)
	assertNear(t, "roundtrip.y", wy2, wy)
}

func TestWorldRectScaledAroundPivot(t *testing.T) {
	n := NewBox("n", 100, 50, ColorWhite)
	n.SetPosition(10, 10)
	n.SetPivot(50, 25)
	n.SetScale(2, 2)
	updateWorldTransform(n, identityTransform, false)

	r := n.WorldRect()
	want := Rect{X: -40, Y: -15, Width: 200, Height: 100}
	if r != want {
		t.Errorf("WorldRect = %+v, want %+v", r, want)
	}
	c := r.Center()
	assertNear(t, "center.x", c.X, 60)
	assertNear(t, "center.y", c.Y, 35)
}

// --- Hit testing ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNodeContainsLocal_ZeroSizeNotHittable(t *testing.T) {
	n := NewContainer("empty")
	if nodeContainsLocal(n, 0, 0) {
		t.Error("zero-sized node without a hit shape should not be hit")
	}
	n.HitShape = HitRect{Width: 10, Height: 10}
	if !nodeContainsLocal(n, 5, 5) {
		t.Error("hit shape should be used")
	}
}

func TestHitTest_TopmostNode(t *testing.T) {
	root := NewContainer("root")
	back := NewBox("back", 100, 100, ColorWhite)
	front := NewBox("front", 50, 50, ColorWhite)
	root.AddChild(back)
	root.AddChild(front)
	updateWorldTransform(root, identityTransform, false)

	hit, _ := hitTest(root, 25, 25, nil)
	if hit != front {
		t.Errorf("hit = %v, want front", hit)
	}
	hit, _ = hitTest(root, 75, 75, nil)
	if hit != back {
		t.Errorf("hit = %v, want back", hit)
	}
}

func TestHitTest_SkipsInvisible(t *testing.T) {
	root := NewContainer("root")
	box := NewBox("box", 100, 100, ColorWhite)
	root.AddChild(box)
	box.Visible = false
	updateWorldTransform(root, identityTransform, false)

	if hit, _ := hitTest(root, 50, 50, nil); hit != nil {
		t.Errorf("hit = %v, want nil", hit.Name)
	}
}

func TestHitTest_ScaledNode(t *testing.T) {
	root := NewContainer("root")
	box := NewBox("box", 100, 100, ColorWhite)
	box.SetPivot(50, 50)
	box.SetScale(2, 2)
	root.AddChild(box)
	updateWorldTransform(root, identityTransform, false)

	// Scaled around its center, the box now spans [-50, 150].
	if hit, _ := hitTest(root, -40, 140, nil); hit != box {
		t.Error("scaled box should be hit outside its unscaled area")
	}
	if hit, _ := hitTest(root, -60, 50, nil); hit != nil {
		t.Error("point beyond the scaled box should miss")
	}
}
