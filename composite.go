package slider

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SplitContent prepares content for a carousel with a lightbox. It returns
// the items of the main slider and a parallel list of fullscreen copies for
// the lightbox. Fragments are flattened and nil entries dropped. Lightbox
// copies never carry the id attribute, so ids stay unique.
func SplitContent(items []*Node) (main, lightbox []*Node) {
	flat := flattenItems(items)
	main = make([]*Node, 0, len(flat))
	lightbox = make([]*Node, 0, len(flat))
	for _, n := range flat {
		switch n.Type {
		case NodeTypeImage:
			main = append(main, n)
			lightbox = append(lightbox, fullscreenImage(n))
		case NodeTypeVideo:
			m, l := splitVideo(n)
			main = append(main, m)
			lightbox = append(lightbox, l)
		case NodeTypePrimitive:
			main = append(main, n)
			c := lightboxCopy(n)
			if f, ok := toFloat64(n.Value); ok {
				c.Value = f
			}
			lightbox = append(lightbox, c)
		default:
			main = append(main, n)
			lightbox = append(lightbox, lightboxCopy(n))
		}
	}
	return main, lightbox
}

// lightboxCopy deep clones n without its id attribute.
func lightboxCopy(n *Node) *Node {
	c := n.Clone()
	c.DeleteAttr(AttrID)
	return c
}

// fullscreenImage substitutes the fullscreen source, text and image.
func fullscreenImage(n *Node) *Node {
	c := lightboxCopy(n)
	c.SetAttr(AttrSrc, firstAttr(n, AttrFullscreenSrc, AttrSrc))
	c.SetAttr(AttrAlt, firstAttr(n, AttrFullscreenAlt, AttrAlt))
	if n.FullImage != nil {
		c.Image = n.FullImage
	}
	return c
}

// firstAttr returns the first non-empty attribute among names, or "".
func firstAttr(n *Node, names ...string) string {
	for _, name := range names {
		if v, ok := n.Attr(name); ok && v != "" {
			return v
		}
	}
	return ""
}

// splitVideo partitions the sources of a video. The main copy keeps the
// regular sources; the lightbox copy uses the fullscreen sources, or the
// regular ones when there are none. Other children are dropped.
func splitVideo(n *Node) (main, lightbox *Node) {
	var regular, full []*Node
	for _, c := range n.Children() {
		if c.Type != NodeTypeSource {
			continue
		}
		if isFullscreenSource(c) {
			full = append(full, c)
		} else {
			regular = append(regular, c)
		}
	}

	main = videoShell(n)
	main.ID = n.ID
	for _, s := range regular {
		main.AddChild(s.Clone())
	}

	lightbox = videoShell(n)
	lightbox.DeleteAttr(AttrID)
	if len(full) == 0 {
		full = regular
	}
	for _, s := range full {
		lightbox.AddChild(s.Clone())
	}
	return main, lightbox
}

// videoShell clones a video node without its children.
func videoShell(n *Node) *Node {
	saved := n.children
	n.children = nil
	c := n.Clone()
	n.children = saved
	return c
}

func isFullscreenSource(n *Node) bool {
	v, ok := n.Attr(AttrFullscreen)
	return ok && v != "" && v != "false"
}

// toFloat64 converts numeric primitive values.
func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// Carousel is the top-level widget: a main slider and, with WithLightbox,
// a fullscreen lightbox slider presented in a Modal. Tapping an item opens
// the lightbox at that item.
type Carousel struct {
	main     *Slider
	lightbox *Slider
	modal    Modal

	lightboxIndex *indexController
	open          bool

	screen  Rect
	content Rect
	styles  Styles
	label   string
	sink    EventSink
	debug   bool

	screenshotQueue []string
	screenshotDir   string
	runner          *TestRunner
}

// NewCarousel creates a carousel over items.
func NewCarousel(items []*Node, opts Options) *Carousel {
	c := &Carousel{styles: opts.Styles, label: opts.ModalLabel, debug: opts.Debug}
	if !opts.WithLightbox {
		c.main = newSlider(items, opts, false)
		return c
	}

	mainItems, lbItems := SplitContent(items)
	c.main = newSlider(mainItems, opts, false)
	c.lightboxIndex = newOptionalIndexController(opts.LightboxIndex, c.lightboxLen, opts.OnLightboxIndexChange)

	lbOpts := opts
	lbOpts.ItemsPerPage = FixedItemsPerPage(1)
	lbOpts.InitialItemsPerPage = 1
	lbOpts.Index = max(0, opts.LightboxIndex)
	lbOpts.OnIndexChange = c.requestLightboxIndex
	lbOpts.NavigationTriggers = nil
	c.lightbox = newSlider(lbItems, lbOpts, true)
	c.lightbox.Input().OnMiss = c.tapOutside
	c.main.onItemTap = c.requestLightboxIndex

	c.modal = opts.Modal
	if c.modal == nil {
		c.modal = NewOverlayModal()
	}
	c.modal.SetProps(c.modalProps())
	return c
}

func (c *Carousel) lightboxLen() int {
	if c.lightbox == nil {
		return 0
	}
	return c.lightbox.Len()
}

// Main returns the main slider.
func (c *Carousel) Main() *Slider { return c.main }

// Lightbox returns the lightbox slider, or nil without WithLightbox.
func (c *Carousel) Lightbox() *Slider { return c.lightbox }

// Modal returns the modal presenting the lightbox, or nil.
func (c *Carousel) Modal() Modal { return c.modal }

// LightboxOpen reports whether the lightbox is open.
func (c *Carousel) LightboxOpen() bool { return c.open }

// LightboxIndex returns the lightbox index, or NoIndex when closed.
func (c *Carousel) LightboxIndex() int {
	if c.lightboxIndex == nil {
		return NoIndex
	}
	return c.lightboxIndex.get()
}

// Input returns the recognizer that currently receives input: the
// lightbox's while it is open.
func (c *Carousel) Input() *Recognizer {
	if c.open {
		return c.lightbox.Input()
	}
	return c.main.Input()
}

// SetItems replaces the carousel content.
func (c *Carousel) SetItems(items []*Node) {
	if c.lightbox == nil {
		c.main.SetItems(items)
		return
	}
	mainItems, lbItems := SplitContent(items)
	c.main.SetItems(mainItems)
	c.lightbox.SetItems(lbItems)
}

// SetIndex pushes the main slider's active index.
func (c *Carousel) SetIndex(i int) { c.main.SetIndex(i) }

// SetNavigationTriggers drives the main slider from previous/next counters.
func (c *Carousel) SetNavigationTriggers(prev, next int) { c.main.SetNavigationTriggers(prev, next) }

// SetItemsPerPage changes the main slider's page size. The lightbox always
// shows one item.
func (c *Carousel) SetItemsPerPage(mode ItemsPerPage) { c.main.SetItemsPerPage(mode) }

// SetLightboxIndex pushes the lightbox index. NoIndex closes the lightbox.
func (c *Carousel) SetLightboxIndex(i int) {
	if c.lightboxIndex == nil {
		return
	}
	switch {
	case c.lightboxIndex.onChange != nil:
		c.lightboxIndex.sync(i)
	case i < 0:
		c.lightboxIndex.value = NoIndex
	default:
		c.lightboxIndex.set(i)
	}
	c.syncLightbox()
}

// CloseLightbox asks the lightbox to close. A controlled lightbox index
// receives NoIndex and stays open until it is pushed back.
func (c *Carousel) CloseLightbox() {
	if c.lightboxIndex == nil {
		return
	}
	c.lightboxIndex.clear()
	c.syncLightbox()
}

func (c *Carousel) requestLightboxIndex(i int) {
	c.lightboxIndex.set(i)
	c.syncLightbox()
}

func (c *Carousel) tapOutside(x, y float64) {
	c.modal.TapOutside(x, y)
}

// SetEventSink sets the event bridge of both sliders.
func (c *Carousel) SetEventSink(sink EventSink) {
	c.sink = sink
	c.main.SetEventSink(sink)
	if c.lightbox != nil {
		c.lightbox.SetEventSink(sink)
	}
}

// SetDebugMode enables or disables debug logging on both sliders.
func (c *Carousel) SetDebugMode(enabled bool) {
	c.debug = enabled
	c.main.SetDebugMode(enabled)
	if c.lightbox != nil {
		c.lightbox.SetDebugMode(enabled)
	}
}

// SetBounds places the main slider.
func (c *Carousel) SetBounds(r Rect) { c.main.SetBounds(r) }

// Layout receives the screen size. The main slider fills the screen unless
// SetBounds placed it; the lightbox fills the modal content area.
func (c *Carousel) Layout(w, h float64) {
	screen := Rect{Width: w, Height: h}
	if screen == c.screen {
		return
	}
	if b := c.main.Bounds(); b == (Rect{}) || b == c.screen {
		c.main.SetBounds(screen)
	}
	c.screen = screen
	if c.modal != nil {
		c.content = c.modal.Layout(screen)
		c.lightbox.SetBounds(c.content)
	}
}

// Update advances the carousel by one tick of 1/TPS seconds.
func (c *Carousel) Update() error {
	c.Step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Step advances the carousel by dt.
func (c *Carousel) Step(dt time.Duration) {
	if c.runner != nil {
		c.runner.step(c)
	}
	c.syncLightbox()
	c.main.Step(dt)
	if c.lightbox != nil {
		if c.open || c.modal.Visible() {
			c.lightbox.Step(dt)
		}
		c.modal.Update(dt.Seconds())
	}
}

// syncLightbox mirrors the lightbox index into the lightbox slider and runs
// the open/close transitions.
func (c *Carousel) syncLightbox() {
	if c.lightbox == nil {
		return
	}
	idx := c.lightboxIndex.get()
	open := idx != NoIndex
	if open {
		c.lightbox.index.sync(idx)
	}
	if open == c.open {
		return
	}
	c.open = open
	c.main.SetInputEnabled(!open)
	c.lightbox.SetInputEnabled(open)
	if open {
		c.lightbox.snap()
		c.lightbox.debugf("open at %d", idx)
		c.emit(Event{Type: EventLightboxOpen, Lightbox: true, Index: idx, First: c.lightbox.FirstVisible()})
	} else {
		c.lightbox.debugf("close")
		c.emit(Event{Type: EventLightboxClose, Lightbox: true, Index: NoIndex, First: c.lightbox.FirstVisible()})
	}
	c.modal.SetProps(c.modalProps())
}

func (c *Carousel) modalProps() ModalProps {
	return ModalProps{
		IsOpen:           c.open,
		ContentLabel:     c.label,
		OnRequestClose:   c.CloseLightbox,
		ClassName:        c.styles.Modal.Resolve(true),
		OverlayClassName: c.styles.ModalOverlay.Resolve(true),
	}
}

func (c *Carousel) emit(e Event) {
	if c.sink != nil {
		c.sink.EmitEvent(e)
	}
}

// Draw renders the main slider, then the lightbox modal on top.
func (c *Carousel) Draw(screen *ebiten.Image) {
	c.main.Draw(screen)
	if c.lightbox != nil && c.modal.Visible() {
		c.modal.Draw(screen, c.lightbox.Draw)
	}
	c.drawScreenshots(screen)
}
