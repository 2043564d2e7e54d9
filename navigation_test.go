package slider

import "testing"

func TestTriggerPair(t *testing.T) {
	var tp triggerPair
	if p, n := tp.observe(3, 7); p || n {
		t.Fatal("first values should be a baseline")
	}
	if p, n := tp.observe(3, 8); p || !n {
		t.Errorf("next change: got (%v, %v)", p, n)
	}
	if p, n := tp.observe(3, 8); p || n {
		t.Errorf("unchanged: got (%v, %v)", p, n)
	}
	if p, n := tp.observe(4, 9); !p || !n {
		t.Errorf("both changed: got (%v, %v)", p, n)
	}
}

func TestNextPage(t *testing.T) {
	tests := []struct {
		first, delta, count, perPage int
		want                         int
	}{
		{0, 1, 9, 3, 3},
		{3, 1, 9, 3, 6},
		{6, 1, 9, 3, 0},  // at the end: wrap
		{5, 1, 9, 3, 6},  // short of the end: stop there
		{6, -1, 9, 3, 3}, // back one page
		{2, -1, 9, 3, 0}, // short of the start: stop there
		{0, -1, 9, 3, 6}, // at the start: wrap
		{0, 1, 2, 3, 0},  // fewer items than a page
	}
	for _, tt := range tests {
		if got := nextPage(tt.first, tt.delta, tt.count, tt.perPage); got != tt.want {
			t.Errorf("nextPage(%d, %+d, %d, %d) = %d, want %d", tt.first, tt.delta, tt.count, tt.perPage, got, tt.want)
		}
	}
}

func TestSlideNavigationMovesActiveIntoWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.ItemsPerPage = FixedItemsPerPage(3)
	opts.NavigationTarget = NavigateSlide
	s := newTestSlider(9, opts)

	s.SetIndex(1)
	s.Step(frame)
	if s.FirstVisible() != 0 {
		t.Fatalf("first = %d, want 0", s.FirstVisible())
	}

	s.Next()
	s.Step(frame)
	if s.FirstVisible() != 3 {
		t.Errorf("first = %d, want 3", s.FirstVisible())
	}
	if s.Index() != 3 {
		t.Errorf("active = %d, want 3", s.Index())
	}
}

func TestSlideNavigationKeepsActiveInsideWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.ItemsPerPage = FixedItemsPerPage(3)
	opts.NavigationTarget = NavigateSlide
	s := newTestSlider(9, opts)

	s.Next()
	s.Step(frame)
	s.SetIndex(4)
	s.Step(frame)
	if s.FirstVisible() != 3 {
		t.Fatalf("first = %d, want 3", s.FirstVisible())
	}
	s.Previous()
	s.Step(frame)
	if s.FirstVisible() != 0 || s.Index() != 2 {
		t.Errorf("first = %d active = %d, want 0 and 2", s.FirstVisible(), s.Index())
	}
}

func TestItemsNavigationWraps(t *testing.T) {
	opts := DefaultOptions()
	opts.ItemsPerPage = FixedItemsPerPage(2)
	s := newTestSlider(5, opts)

	s.Previous()
	s.Step(frame)
	if s.Index() != 4 {
		t.Errorf("previous from 0 = %d, want 4", s.Index())
	}
	if s.FirstVisible() != 3 {
		t.Errorf("first = %d, want 3", s.FirstVisible())
	}
	s.Next()
	s.Step(frame)
	if s.Index() != 0 || s.FirstVisible() != 0 {
		t.Errorf("next from 4 = (%d, first %d), want (0, first 0)", s.Index(), s.FirstVisible())
	}
}

func TestItemsNavigationFollowsMinimally(t *testing.T) {
	opts := DefaultOptions()
	opts.ItemsPerPage = FixedItemsPerPage(3)
	s := newTestSlider(9, opts)

	for range 3 {
		s.Next()
		s.Step(frame)
	}
	if s.Index() != 3 || s.FirstVisible() != 1 {
		t.Errorf("active = %d first = %d, want 3 and 1", s.Index(), s.FirstVisible())
	}
}

func TestNavigationTriggers(t *testing.T) {
	opts := DefaultOptions()
	opts.ItemsPerPage = FixedItemsPerPage(2)
	s := newTestSlider(5, opts)

	s.SetNavigationTriggers(0, 0)
	s.SetNavigationTriggers(0, 0)
	if s.Index() != 0 {
		t.Fatalf("baseline navigated to %d", s.Index())
	}
	s.SetNavigationTriggers(0, 1)
	if s.Index() != 1 {
		t.Errorf("next trigger: index = %d, want 1", s.Index())
	}
	s.SetNavigationTriggers(1, 1)
	if s.Index() != 0 {
		t.Errorf("previous trigger: index = %d, want 0", s.Index())
	}
}

func TestNavigationTriggersSeeded(t *testing.T) {
	opts, err := ParseOptions([]byte(`{"itemsPerPage": 2, "navigationTriggers": [4, 7]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := newTestSlider(5, opts)

	// The first push is compared against the configured counters.
	s.SetNavigationTriggers(4, 8)
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1 after the next counter moved", s.Index())
	}
	s.SetNavigationTriggers(4, 8)
	if s.Index() != 1 {
		t.Errorf("unchanged counters navigated to %d", s.Index())
	}
}

func TestCarouselNavigationTriggers(t *testing.T) {
	opts := DefaultOptions()
	opts.NavigationTriggers = &[2]int{0, 0}
	c := newTestCarousel(6, opts)
	c.SetNavigationTriggers(0, 1)
	if c.Main().Index() != 1 {
		t.Errorf("main index = %d, want 1", c.Main().Index())
	}
	if c.Lightbox().Index() != 0 {
		t.Errorf("lightbox index = %d, want untouched", c.Lightbox().Index())
	}
}

func TestNavigationWithoutItems(t *testing.T) {
	s := newTestSlider(0, DefaultOptions())
	s.Next()
	s.Previous()
	if s.Index() != 0 || s.FirstVisible() != 0 {
		t.Errorf("index = %d first = %d, want 0", s.Index(), s.FirstVisible())
	}
}
