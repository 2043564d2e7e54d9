package slider

import (
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Slider is one carousel: a row of items that can be paged, swiped and
// pinched. It owns a small node tree:
//
//	root (Styles.Root)
//	├── frame (Styles.Wrapper, items-per-page class): the measured container
//	│   └── track: translated by the scroll animation
//	│       └── slide i (Styles.Slide/VisibleSlide/ActiveSlide), at i*slot
//	│           └── item target i: per-item pinch/zoom transform
//	│               └── content i (the caller's node)
//	├── previous button
//	└── next button
//
// Call Update once per tick and Draw once per frame.
type Slider struct {
	items []*Node

	root    *Node
	frame   *Node
	track   *Node
	slides  []*Node
	targets []*Node
	prevBtn *Node
	nextBtn *Node

	bounds Rect

	dims     *dimensionTracker
	index    *indexController
	view     *viewport
	scroll   *scrollAnimator
	itemAnim itemAnimator
	input    *Recognizer
	triggers triggerPair

	phase        DragPhase
	navTarget    NavigationTarget
	withScaling  bool
	lightboxMode bool
	styles       Styles
	inputEnabled bool
	debug        bool

	// onItemTap is called with the index of a tapped item.
	onItemTap func(index int)

	sink         EventSink
	pending      []Event
	lastActive   int
	lastFirst    int
	hitBuf       []*Node
	wasReady     bool
	controlLabel [2]string
}

const controlSize = 32

// NewSlider creates a slider over items. Lightbox options are ignored; use
// NewCarousel for a slider with a lightbox.
func NewSlider(items []*Node, opts Options) *Slider {
	return newSlider(items, opts, false)
}

func newSlider(items []*Node, opts Options, lightboxMode bool) *Slider {
	s := &Slider{
		navTarget:    opts.NavigationTarget,
		withScaling:  opts.WithScaling,
		lightboxMode: lightboxMode,
		styles:       opts.Styles,
		inputEnabled: true,
		debug:        opts.Debug,
		dims:         newDimensionTracker(opts.ItemsPerPage, opts.initialItemsPerPage()),
		scroll:       newScrollAnimator(),
		controlLabel: [2]string{opts.PreviousBtnLabel, opts.NextBtnLabel},
	}
	if t := opts.NavigationTriggers; t != nil {
		s.triggers.observe(t[0], t[1])
	}
	s.index = newIndexController(opts.Index, s.Len, opts.OnIndexChange)
	s.view = newViewport(s.index.get())
	s.lastActive, s.lastFirst = NoIndex, NoIndex

	s.input = NewRecognizer(s.hitTest)
	if opts.DragDeadZone > 0 {
		s.input.DeadZone = opts.DragDeadZone
	}
	s.input.Bounds = s.dragBounds
	s.input.From = s.dragFrom
	s.input.PinchFrom = s.pinchFrom
	s.input.OnDrag = s.onDrag
	s.input.OnPinch = s.onPinch
	s.input.OnTap = s.onTap

	s.scroll.x.OnChange(s.onScroll)
	s.scroll.x.OnRest(s.onScrollRest)

	s.buildTree(opts.PreviousBtnContent, opts.NextBtnContent)
	s.SetItems(items)
	return s
}

// buildTree creates the fixed part of the node tree.
func (s *Slider) buildTree(prevContent, nextContent *Node) {
	s.root = NewContainer("slider")
	s.frame = NewContainer("frame")
	s.track = NewContainer("track")
	s.root.AddChild(s.frame)
	s.frame.AddChild(s.track)

	s.prevBtn = newControl("previous", s.controlLabel[0], prevContent)
	s.nextBtn = newControl("next", s.controlLabel[1], nextContent)
	s.root.AddChild(s.prevBtn)
	s.root.AddChild(s.nextBtn)
}

// newControl creates a navigation button. Without custom content it shows a
// chevron.
func newControl(name, label string, content *Node) *Node {
	btn := NewBox(name, controlSize, controlSize, Color{0, 0, 0, 0.45})
	btn.Interactable = true
	if label != "" {
		btn.SetAttr(AttrAriaLabel, label)
	}
	if content == nil {
		glyph := "<"
		if name == "next" {
			glyph = ">"
		}
		content = NewPrimitive(glyph)
		content.SetPosition(12, 8)
	}
	btn.AddChild(content)
	return btn
}

// SetItems replaces the slider content. Per-item transforms follow items
// with a stable Key; the active index wraps into the new range.
func (s *Slider) SetItems(items []*Node) {
	flat := flattenItems(items)
	if s.debug {
		debugCheckItemCount(len(flat))
	}
	s.items = flat
	s.itemAnim.resize(itemKeys(flat))

	s.track.RemoveChildren()
	s.slides = s.slides[:0]
	s.targets = s.targets[:0]
	for i, item := range flat {
		name := item.Key
		if name == "" {
			name = positionalKey(i)
		}
		slide := NewContainer("slide:" + name)
		target := NewContainer("target:" + name)
		slide.AddChild(target)
		item.RemoveFromParent()
		target.AddChild(item)
		s.track.AddChild(slide)
		s.slides = append(s.slides, slide)
		s.targets = append(s.targets, target)
	}
	s.layout()
}

// flattenItems drops nil entries and expands fragments into their children.
func flattenItems(items []*Node) []*Node {
	out := make([]*Node, 0, len(items))
	for _, n := range items {
		switch {
		case n == nil:
		case n.Type == NodeTypeFragment:
			out = append(out, flattenItems(append([]*Node(nil), n.Children()...))...)
		default:
			out = append(out, n)
		}
	}
	return out
}

// --- Accessors ---

// Root returns the slider's root node.
func (s *Slider) Root() *Node { return s.root }

// Items returns the content nodes. The returned slice MUST NOT be mutated.
func (s *Slider) Items() []*Node { return s.items }

// Len returns the number of items.
func (s *Slider) Len() int { return len(s.items) }

// Input returns the gesture recognizer, for injecting input.
func (s *Slider) Input() *Recognizer { return s.input }

// Index returns the active index, or 0 with no items.
func (s *Slider) Index() int { return s.index.get() }

// FirstVisible returns the index of the leftmost visible item.
func (s *Slider) FirstVisible() int { return s.view.first }

// ItemsPerPage returns the number of items in the visible window.
func (s *Slider) ItemsPerPage() int { return s.dims.itemsPerPage() }

// SlotSize returns the width of one item slot in pixels.
func (s *Slider) SlotSize() float64 { return s.dims.slotSize() }

// ScrollOffset returns the current track translation.
func (s *Slider) ScrollOffset() float64 { return s.scroll.x.Get() }

// Phase returns the drag phase of the page scroll.
func (s *Slider) Phase() DragPhase { return s.phase }

// ItemTransform returns the pinch/zoom transform of item i.
func (s *Slider) ItemTransform(i int) ItemTransform { return s.itemAnim.get(i) }

// IsVisible reports whether item i is inside the visible window.
func (s *Slider) IsVisible(i int) bool {
	return isVisible(i, s.view.first, s.dims.itemsPerPage())
}

// Ready reports whether the layout is usable. A slider that is not ready
// draws nothing and ignores gestures.
func (s *Slider) Ready() bool {
	return s.dims.itemsPerPage() >= 1 && s.dims.slotSize() > 0
}

// ItemRect returns the screen rectangle of item i's slot, scaled and moved
// by its pinch transform.
func (s *Slider) ItemRect(i int) Rect {
	if i < 0 || i >= len(s.targets) {
		return Rect{}
	}
	updateWorldTransform(s.root, identityTransform, false)
	return s.targets[i].WorldRect()
}

// Bounds returns the container rectangle in screen coordinates.
func (s *Slider) Bounds() Rect { return s.bounds }

// SetBounds places the slider container on screen. A size change is picked
// up by the dimension tracker on the next Update.
func (s *Slider) SetBounds(r Rect) {
	s.bounds = r
	s.layout()
}

// SetIndex pushes a new active index. With OnIndexChange set this is the
// controlled value the slider mirrors; otherwise it moves the index directly.
func (s *Slider) SetIndex(i int) {
	if s.index.onChange != nil {
		s.index.sync(i)
		return
	}
	s.index.set(i)
}

// SetEventSink sets the optional event bridge.
func (s *Slider) SetEventSink(sink EventSink) { s.sink = sink }

// SetInputEnabled stops or resumes gesture processing. A disabled slider
// keeps animating.
func (s *Slider) SetInputEnabled(enabled bool) {
	if !enabled && s.inputEnabled {
		s.cancelGestures()
	}
	s.inputEnabled = enabled
}

// cancelGestures drops the gestures in progress. A page drag that loses its
// pointer settles on the current window like a canceled release.
func (s *Slider) cancelGestures() {
	s.input.Reset()
	if s.phase != DragStarting {
		return
	}
	s.phase = Dragging
	s.debugf("drag: interrupted, settling on first %d", s.view.first)
	s.scroll.animateTo(restPosition(s.view.first, s.dims.slotSize()), false)
	s.emit(Event{Type: EventDragEnd, Index: s.index.get(), First: s.view.first, Offset: s.scroll.x.Get()})
}

// SetItemsPerPage changes the page size mode. The new count takes effect
// after the usual debounce on a following Update.
func (s *Slider) SetItemsPerPage(mode ItemsPerPage) {
	if s.dims.mode == mode {
		return
	}
	s.debugf("items per page: %s -> %s", s.dims.mode, mode)
	s.dims.setMode(mode)
}

// --- Frame ---

// Update advances the slider by one tick of 1/TPS seconds.
func (s *Slider) Update() {
	s.Step(time.Second / time.Duration(ebiten.TPS()))
}

// Step advances the slider by dt: measure, process input, reconcile the
// window, animate and apply the result to the node tree.
func (s *Slider) Step(dt time.Duration) {
	updateWorldTransform(s.root, identityTransform, false)

	s.dims.observe(s.bounds.Width, s.firstItem())
	if s.dims.advance(dt) {
		s.debugf("layout: %d per page, slot %.1f (container %.1f, item %.1f)",
			s.dims.itemsPerPage(), s.dims.slotSize(), s.dims.containerSize(), s.dims.itemSize())
		s.layout()
	}
	if ready := s.Ready(); ready != s.wasReady {
		if !ready {
			s.debugf("warning: degenerate layout (%d per page), nothing rendered", s.dims.itemsPerPage())
		}
		s.wasReady = ready
	}

	if s.inputEnabled {
		s.input.Poll(dt)
	}

	count, perPage := s.Len(), s.dims.itemsPerPage()
	s.view.reconcile(s.index.get(), count, perPage, s.phase)
	s.itemAnim.onWindow(s.view.first, perPage)
	s.scroll.retarget(s.view.first, s.dims.slotSize(), count, s.phase)

	secs := dt.Seconds()
	s.scroll.x.Update(secs)
	s.itemAnim.update(secs)

	s.apply()
	s.flushEvents()
}

// snap settles the slider on its current index at once: the window is
// recomputed and the track jumps to its rest position.
func (s *Slider) snap() {
	s.input.Reset()
	s.phase = Settled
	s.view.primed = false
	s.view.lock = lockNone
	s.view.reconcile(s.index.get(), s.Len(), s.dims.itemsPerPage(), s.phase)
	if slot := s.dims.slotSize(); slot > 0 {
		s.scroll.animateTo(restPosition(s.view.first, slot), true)
	}
	s.apply()
}

func (s *Slider) firstItem() *Node {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[0]
}

// layout sizes and positions the structural nodes from the bounds and the
// current slot size.
func (s *Slider) layout() {
	w, h := s.bounds.Width, s.bounds.Height
	slot := s.dims.slotSize()

	s.root.SetPosition(s.bounds.X, s.bounds.Y)
	s.root.Width, s.root.Height = w, h
	s.frame.Width, s.frame.Height = w, h
	s.frame.HitShape = HitRect{Width: w, Height: h}

	for i, slide := range s.slides {
		slide.SetPosition(float64(i)*slot, 0)
		slide.Width, slide.Height = slot, h
		target := s.targets[i]
		target.Width, target.Height = slot, h
		if target.PivotX != slot/2 || target.PivotY != h/2 {
			target.SetPivot(slot/2, h/2)
		}
		item := s.items[i]
		item.SetPosition(item.MarginLeft, max(0, (h-item.Height)/2))
	}

	cy := max(0, (h-controlSize)/2)
	s.prevBtn.SetPosition(0, cy)
	s.nextBtn.SetPosition(max(0, w-controlSize), cy)
}

// apply writes animation state and style identifiers into the node tree.
func (s *Slider) apply() {
	s.track.SetPosition(s.scroll.x.Get(), 0)
	for i, target := range s.targets {
		t := s.itemAnim.get(i)
		target.SetPosition(t.X, t.Y)
		target.SetScale(t.Scale, t.Scale)
		s.slides[i].Class = s.SlideClassName(i)
	}
	fs := s.lightboxMode
	s.root.Class = s.styles.Root.Resolve(fs)
	s.frame.Class = joinClasses(s.styles.Wrapper.Resolve(fs), s.ItemsPerPageClassName())
	s.prevBtn.Class = s.styles.PreviousBtn.Resolve(fs)
	s.nextBtn.Class = s.styles.NextBtn.Resolve(fs)
}

// SlideClassName returns the style identifiers of slide idx: the slide
// identifier, plus the visible one inside the window, plus the active one
// for the active item.
func (s *Slider) SlideClassName(idx int) string {
	fs := s.lightboxMode
	classes := []string{s.styles.Slide.Resolve(fs)}
	if s.IsVisible(idx) {
		classes = append(classes, s.styles.VisibleSlide.Resolve(fs))
	}
	if s.Len() > 0 && idx == s.index.get() {
		classes = append(classes, s.styles.ActiveSlide.Resolve(fs))
	}
	return joinClasses(classes...)
}

// ItemsPerPageClassName returns the items-per-page prefix followed by the
// current count, or "" without a prefix.
func (s *Slider) ItemsPerPageClassName() string {
	if s.styles.ItemsPerPage == "" {
		return ""
	}
	return s.styles.ItemsPerPage + strconv.Itoa(s.dims.itemsPerPage())
}

func joinClasses(classes ...string) string {
	var b strings.Builder
	for _, c := range classes {
		if c == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c)
	}
	return b.String()
}

// --- Events ---

func (s *Slider) emit(e Event) {
	if s.sink == nil {
		return
	}
	e.Lightbox = s.lightboxMode
	s.pending = append(s.pending, e)
}

// flushEvents reports index and window changes, then hands every pending
// event to the sink.
func (s *Slider) flushEvents() {
	active, first := s.index.get(), s.view.first
	if s.Len() > 0 && active != s.lastActive {
		s.emit(Event{Type: EventIndexChange, Index: active, First: first})
	}
	if first != s.lastFirst {
		s.emit(Event{Type: EventFirstVisibleChange, Index: active, First: first})
	}
	s.lastActive, s.lastFirst = active, first

	if s.sink == nil {
		return
	}
	for _, e := range s.pending {
		s.sink.EmitEvent(e)
	}
	clear(s.pending)
	s.pending = s.pending[:0]
}
