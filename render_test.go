package slider

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGeoMMatchesTransformPoint(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 10, 20}
	g := geoM(m)
	for _, p := range [][2]float64{{0, 0}, {1, 1}, {-4, 7}} {
		gx, gy := g.Apply(p[0], p[1])
		wx, wy := transformPoint(m, p[0], p[1])
		assertNear(t, "x", gx, wx)
		assertNear(t, "y", gy, wy)
	}
}

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"partial", Rect{X: 90, Y: 40, Width: 20, Height: 20}, true},
		{"touching edge", Rect{X: 100, Y: 0, Width: 10, Height: 10}, false},
		{"left of", Rect{X: -20, Y: 0, Width: 10, Height: 10}, false},
		{"below", Rect{X: 0, Y: 60, Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		if got := overlaps(a, tt.b); got != tt.want {
			t.Errorf("%s: overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestImageRect(t *testing.T) {
	got := imageRect(Rect{X: 10.5, Y: -0.5, Width: 20, Height: 10.2})
	want := image.Rect(10, -1, 31, 10)
	if got != want {
		t.Errorf("imageRect = %v, want %v", got, want)
	}
}

func TestClipImage(t *testing.T) {
	screen := ebiten.NewImage(100, 100)
	sub := clipImage(screen, Rect{X: 50, Y: 50, Width: 100, Height: 100})
	if sub == nil || sub.Bounds() != image.Rect(50, 50, 100, 100) {
		t.Errorf("clip = %v, want the screen intersection", sub)
	}
	if clipImage(screen, Rect{X: 200, Y: 0, Width: 10, Height: 10}) != nil {
		t.Error("rect outside the screen should clip to nothing")
	}
}

func TestDrawSmoke(t *testing.T) {
	screen := ebiten.NewImage(300, 100)
	opts := DefaultOptions()
	opts.ItemsPerPage = FixedItemsPerPage(3)

	items := testBoxes(2)
	items = append(items, NewVideo("clip", NewSource("clip.mp4", false)), NewPrimitive(42))
	s := NewSlider(items, opts)
	s.SetBounds(Rect{Width: 300, Height: 100})
	s.Step(frame)
	s.Draw(screen)

	// Not ready: nothing to draw, must not panic.
	empty := NewSlider(nil, opts)
	empty.Draw(screen)
}

func TestCarouselDrawSmoke(t *testing.T) {
	c := newTestCarousel(5, DefaultOptions())
	c.SetLightboxIndex(1)
	c.Step(frame)
	screen := ebiten.NewImage(400, 200)
	c.Draw(screen)
}
