package slider

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr returns what fn writes to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	defer func() { os.Stderr = old }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()
	fn()
	w.Close()
	return <-done
}

func TestDebugfOnlyInDebugMode(t *testing.T) {
	s := NewSlider(testBoxes(2), DefaultOptions())
	out := captureStderr(t, func() { s.debugf("layout %d", 1) })
	if out != "" {
		t.Errorf("debug off wrote %q", out)
	}

	s.SetDebugMode(true)
	out = captureStderr(t, func() { s.debugf("layout %d", 1) })
	if out != "[slider] layout 1\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDebugfLightboxPrefix(t *testing.T) {
	opts := DefaultOptions()
	opts.WithLightbox = true
	c := NewCarousel(testBoxes(2), opts)
	c.Layout(400, 200)
	c.Step(frame)
	c.SetDebugMode(true)
	out := captureStderr(t, func() { c.SetLightboxIndex(1) })
	if !strings.Contains(out, "[slider/lightbox] open at 1") {
		t.Errorf("output = %q, want the lightbox open line", out)
	}
}

func TestDebugCheckItemCount(t *testing.T) {
	out := captureStderr(t, func() { debugCheckItemCount(debugMaxItemCount) })
	if out != "" {
		t.Errorf("at the threshold wrote %q", out)
	}
	out = captureStderr(t, func() { debugCheckItemCount(debugMaxItemCount + 1) })
	if !strings.Contains(out, "warning: 1001 items") {
		t.Errorf("output = %q, want an item count warning", out)
	}
}

func TestDebugLogsNavigation(t *testing.T) {
	opts := DefaultOptions()
	opts.ItemsPerPage = FixedItemsPerPage(3)
	s := newTestSlider(6, opts)
	s.SetDebugMode(true)
	out := captureStderr(t, func() { s.Next() })
	if !strings.Contains(out, "navigate items +1 from 0") {
		t.Errorf("output = %q", out)
	}
}

func TestDebugLogsLayoutMeasurements(t *testing.T) {
	opts := DefaultOptions()
	opts.Debug = true
	s := NewSlider(testBoxes(2), opts)
	s.SetBounds(Rect{Width: 300, Height: 100})
	out := captureStderr(t, func() { s.Step(frame) })
	if !strings.Contains(out, "layout: 6 per page, slot 50.0 (container 300.0, item 50.0)") {
		t.Errorf("output = %q, want the layout line with measurements", out)
	}
}
