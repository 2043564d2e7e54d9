package slider

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders the slider into screen, clipped to its bounds. A slider that
// is not Ready draws nothing.
func (s *Slider) Draw(screen *ebiten.Image) {
	if !s.Ready() || s.bounds.Width <= 0 || s.bounds.Height <= 0 {
		return
	}
	updateWorldTransform(s.root, identityTransform, false)
	dst := clipImage(screen, s.bounds)
	if dst == nil {
		return
	}
	drawNode(dst, s.root, s.bounds)
}

// clipImage returns the part of screen inside r. Sub-images keep the parent
// coordinate system, so world transforms apply unchanged.
func clipImage(screen *ebiten.Image, r Rect) *ebiten.Image {
	clip := imageRect(r).Intersect(screen.Bounds())
	if clip.Empty() {
		return nil
	}
	return screen.SubImage(clip).(*ebiten.Image)
}

// drawNode draws n and its subtree depth first. Culling only skips the
// node's own draw; children are always visited.
func drawNode(dst *ebiten.Image, n *Node, clip Rect) {
	if !n.Visible {
		return
	}
	if n.Width <= 0 || n.Height <= 0 || overlaps(n.WorldRect(), clip) {
		switch n.Type {
		case NodeTypeContainer:
			drawFill(dst, n)
		case NodeTypeImage:
			drawFill(dst, n)
			drawImage(dst, n, n.Image)
		case NodeTypeVideo:
			drawVideo(dst, n)
			return
		case NodeTypePrimitive:
			drawFill(dst, n)
			x, y := transformPoint(n.worldTransform, 0, 0)
			ebitenutil.DebugPrintAt(dst, fmt.Sprint(n.Value), int(x), int(y))
		case NodeTypeSource:
			return
		}
	}
	for _, c := range n.children {
		drawNode(dst, c, clip)
	}
}

// drawFill paints the node's box with its color.
func drawFill(dst *ebiten.Image, n *Node) {
	if n.Color.A <= 0 || n.Width <= 0 || n.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(n.Width, n.Height)
	op.GeoM.Concat(geoM(n.worldTransform))
	op.ColorScale.Scale(float32(n.Color.R*n.Color.A), float32(n.Color.G*n.Color.A),
		float32(n.Color.B*n.Color.A), float32(n.Color.A))
	dst.DrawImage(WhitePixel, &op)
}

// drawImage scales img into the node's box.
func drawImage(dst *ebiten.Image, n *Node, img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	w, h := n.Width, n.Height
	if w <= 0 || h <= 0 {
		w, h = float64(b.Dx()), float64(b.Dy())
	}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Concat(geoM(n.worldTransform))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
}

// drawVideo draws a placeholder frame labelled with the first source.
func drawVideo(dst *ebiten.Image, n *Node) {
	if n.Color.A > 0 {
		drawFill(dst, n)
	} else if n.Width > 0 && n.Height > 0 {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(geoM(n.worldTransform))
		op.ColorScale.Scale(0.08, 0.08, 0.08, 1)
		dst.DrawImage(WhitePixel, &op)
	}
	label := "video"
	for _, c := range n.children {
		if src, ok := c.Attr(AttrSrc); ok && c.Type == NodeTypeSource {
			label = "video " + src
			break
		}
	}
	x, y := transformPoint(n.worldTransform, 4, 4)
	ebitenutil.DebugPrintAt(dst, label, int(x), int(y))
}

func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}

// imageRect converts r to the smallest integer rectangle containing it.
func imageRect(r Rect) image.Rectangle {
	return image.Rect(int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)))
}
