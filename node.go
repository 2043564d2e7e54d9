package slider

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oklog/ulid/v2"
)

// NodeType distinguishes how a Node is rendered and how it is copied into
// the lightbox.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node, optional solid fill
	NodeTypeFragment                  // transparent grouping, flattened when content is split
	NodeTypeImage                     // renders Image scaled into its box
	NodeTypeVideo                     // media node whose children are NodeTypeSource
	NodeTypeSource                    // one media source of a video
	NodeTypePrimitive                 // bare string or number content
)

// Attribute names understood by SplitContent.
const (
	AttrID             = "id"
	AttrSrc            = "src"
	AttrAlt            = "alt"
	AttrFullscreen     = "data-fullscreen"
	AttrFullscreenSrc  = "data-fullscreen-src"
	AttrFullscreenAlt  = "data-fullscreen-alt"
	AttrAriaLabel      = "aria-label"
	defaultNodeAttrCap = 4
)

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Node is the element type of the slider's retained tree. Content items,
// the per-item wrappers the slider creates around them, and the navigation
// controls are all Nodes. A single flat struct is used for every type.
type Node struct {
	// Identity. ID is unique per node, Key is an optional caller-supplied
	// stable key used to carry per-item state across content changes.
	ID   ulid.ULID
	Name string
	Type NodeType
	Key  string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Pivot is in local pixels.
	X, Y           float64
	ScaleX, ScaleY float64
	PivotX, PivotY float64

	// Box. Margins only count towards the measured slot size.
	Width, Height           float64
	MarginLeft, MarginRight float64

	Visible      bool
	Interactable bool
	Color        Color

	// Content
	Image     *ebiten.Image
	FullImage *ebiten.Image // high resolution variant shown in the lightbox
	Value     any           // string or number for NodeTypePrimitive
	Attrs     map[string]string

	// Class holds the resolved style identifiers assigned by the slider.
	Class string

	HitShape HitShape
	UserData any

	worldTransform [6]float64
	transformDirty bool
}

func nodeDefaults(n *Node) {
	n.ID = ulid.Make()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a group node. Give it a Width, Height and Color to
// render a solid box.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a solid colored container of the given size.
func NewBox(name string, w, h float64, c Color) *Node {
	n := NewContainer(name)
	n.Width, n.Height = w, h
	n.Color = c
	return n
}

// NewFragment groups children without adding a level to the item list.
// SplitContent flattens fragments into their children.
func NewFragment(children ...*Node) *Node {
	n := &Node{Name: "fragment", Type: NodeTypeFragment}
	nodeDefaults(n)
	for _, c := range children {
		if c != nil {
			n.AddChild(c)
		}
	}
	return n
}

// NewImage creates an image node. src is kept as an attribute so the
// lightbox copy can substitute a fullscreen source.
func NewImage(name, src string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeImage, Image: img}
	nodeDefaults(n)
	if src != "" {
		n.SetAttr(AttrSrc, src)
	}
	if img != nil {
		b := img.Bounds()
		n.Width, n.Height = float64(b.Dx()), float64(b.Dy())
	}
	return n
}

// NewVideo creates a video node from its sources.
func NewVideo(name string, sources ...*Node) *Node {
	n := &Node{Name: name, Type: NodeTypeVideo}
	nodeDefaults(n)
	for _, s := range sources {
		n.AddChild(s)
	}
	return n
}

// NewSource creates a media source. Fullscreen sources are only used by
// the lightbox rendering.
func NewSource(src string, fullscreen bool) *Node {
	n := &Node{Name: "source", Type: NodeTypeSource}
	nodeDefaults(n)
	n.SetAttr(AttrSrc, src)
	if fullscreen {
		n.SetAttr(AttrFullscreen, "true")
	}
	return n
}

// NewPrimitive wraps a bare string or number as content.
func NewPrimitive(v any) *Node {
	n := &Node{Name: "primitive", Type: NodeTypePrimitive, Value: v}
	nodeDefaults(n)
	return n
}

// --- Attributes ---

// Attr returns the attribute value and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string, defaultNodeAttrCap)
	}
	n.Attrs[name] = value
}

// DeleteAttr removes an attribute. No-op if unset.
func (n *Node) DeleteAttr(name string) {
	delete(n.Attrs, name)
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("slider: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("slider: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("slider: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Clone returns a deep copy of the subtree rooted at n. Every copy gets a
// fresh ID and no parent; images are shared, attributes are copied.
func (n *Node) Clone() *Node {
	c := *n
	c.ID = ulid.Make()
	c.Parent = nil
	c.children = nil
	c.transformDirty = true
	if n.Attrs != nil {
		c.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			c.Attrs[k] = v
		}
	}
	for _, child := range n.children {
		c.AddChild(child.Clone())
	}
	return &c
}

// BoxWidth returns the width a node occupies in a row, margins included.
func (n *Node) BoxWidth() float64 {
	return n.Width + n.MarginLeft + n.MarginRight
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
