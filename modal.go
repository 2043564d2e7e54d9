package slider

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// ModalProps is what a Carousel passes to its Modal every time the lightbox
// state changes.
type ModalProps struct {
	IsOpen       bool
	ContentLabel string
	// OnRequestClose asks the owner to close the modal. The modal stays open
	// until the owner sets IsOpen to false.
	OnRequestClose func()
	// ClassName and OverlayClassName are the resolved style identifiers.
	ClassName        string
	OverlayClassName string
}

// Modal presents the lightbox slider over the rest of the screen.
type Modal interface {
	SetProps(p ModalProps)
	// Layout receives the screen rectangle and returns the rectangle the
	// lightbox content occupies.
	Layout(screen Rect) Rect
	Update(dt float64)
	// TapOutside handles a tap that hit no lightbox content.
	TapOutside(x, y float64)
	// Visible reports whether anything is drawn, including a closing fade.
	Visible() bool
	Draw(screen *ebiten.Image, content func(dst *ebiten.Image))
}

const (
	modalFadeDuration = 0.2
	modalOverlayAlpha = 0.85
	modalOpenScale    = 0.92
	modalInset        = 0.05
)

// OverlayModal is the default Modal: a dimmed backdrop that fades in and a
// content panel that grows to full size. Escape and backdrop taps request
// closing.
type OverlayModal struct {
	props ModalProps

	overlay *Node
	panel   *Node
	content Rect

	fade    *TweenGroup
	grow    *TweenGroup
	visible bool
}

// NewOverlayModal creates the default modal.
func NewOverlayModal() *OverlayModal {
	m := &OverlayModal{
		overlay: NewBox("modal-overlay", 0, 0, Color{0, 0, 0, 0}),
		panel:   NewContainer("modal"),
	}
	m.overlay.AddChild(m.panel)
	return m
}

// Props returns the last props set.
func (m *OverlayModal) Props() ModalProps { return m.props }

// ContentRect returns the content rectangle of the last Layout.
func (m *OverlayModal) ContentRect() Rect { return m.content }

func (m *OverlayModal) SetProps(p ModalProps) {
	wasOpen := m.props.IsOpen
	m.props = p
	m.overlay.Class = p.OverlayClassName
	m.panel.Class = p.ClassName
	if p.ContentLabel != "" {
		m.panel.SetAttr(AttrAriaLabel, p.ContentLabel)
	} else {
		m.panel.DeleteAttr(AttrAriaLabel)
	}
	if p.IsOpen == wasOpen {
		return
	}
	if p.IsOpen {
		m.visible = true
		m.overlay.Color.A = 0
		m.panel.SetScale(modalOpenScale, modalOpenScale)
		m.fade = TweenAlpha(m.overlay, modalOverlayAlpha, modalFadeDuration, ease.OutQuad)
		m.grow = TweenScale(m.panel, 1, 1, modalFadeDuration, ease.OutCubic)
		return
	}
	m.fade = TweenAlpha(m.overlay, 0, modalFadeDuration, ease.InQuad)
	m.grow = TweenScale(m.panel, modalOpenScale, modalOpenScale, modalFadeDuration, ease.InCubic)
}

func (m *OverlayModal) Layout(screen Rect) Rect {
	m.overlay.SetPosition(screen.X, screen.Y)
	m.overlay.Width, m.overlay.Height = screen.Width, screen.Height
	dx, dy := screen.Width*modalInset, screen.Height*modalInset
	m.content = Rect{X: screen.X + dx, Y: screen.Y + dy, Width: screen.Width - 2*dx, Height: screen.Height - 2*dy}
	m.panel.SetPosition(dx, dy)
	m.panel.Width, m.panel.Height = m.content.Width, m.content.Height
	m.panel.SetPivot(m.content.Width/2, m.content.Height/2)
	return m.content
}

func (m *OverlayModal) Update(dt float64) {
	if m.props.IsOpen && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.requestClose()
	}
	if m.fade != nil {
		m.fade.Update(float32(dt))
		m.grow.Update(float32(dt))
		if m.fade.Done {
			m.fade, m.grow = nil, nil
			m.visible = m.props.IsOpen
		}
	}
}

func (m *OverlayModal) TapOutside(x, y float64) {
	if m.props.IsOpen && !m.content.Contains(x, y) {
		m.requestClose()
	}
}

func (m *OverlayModal) requestClose() {
	if m.props.OnRequestClose != nil {
		m.props.OnRequestClose()
	}
}

func (m *OverlayModal) Visible() bool { return m.visible }

// Draw paints the backdrop, then the content scaled with the panel.
func (m *OverlayModal) Draw(screen *ebiten.Image, content func(dst *ebiten.Image)) {
	if !m.visible {
		return
	}
	updateWorldTransform(m.overlay, identityTransform, false)
	drawFill(screen, m.overlay)
	if content == nil {
		return
	}
	if m.panel.ScaleX == 1 {
		content(screen)
		return
	}
	// Growing or shrinking: render offscreen and draw through the panel
	// transform.
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	off := ebiten.NewImage(w, h)
	defer off.Deallocate()
	content(off)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-m.content.X, -m.content.Y)
	op.GeoM.Concat(geoM(m.panel.worldTransform))
	op.ColorScale.ScaleAlpha(float32(clamp01(m.overlay.Color.A / modalOverlayAlpha)))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(off, &op)
}
