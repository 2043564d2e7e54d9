package slider

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// touchSlots maps Ebitengine touch IDs to pointer slots 1-9.
type touchSlots struct {
	ids     [maxPointers]ebiten.TouchID
	used    [maxPointers]bool
	last    [maxPointers]Vec2
	scratch []ebiten.TouchID
}

// slot returns the existing slot for tid or allocates a new one. Returns -1
// if every slot is taken.
func (t *touchSlots) slot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if t.used[i] && t.ids[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !t.used[i] {
			t.used[i] = true
			t.ids[i] = tid
			return i
		}
	}
	return -1
}

// readEbitenInput appends the current mouse and touch state to buf.
func (r *Recognizer) readEbitenInput(buf []PointerSample) []PointerSample {
	mx, my := ebiten.CursorPosition()
	buf = append(buf, PointerSample{
		ID:      0,
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})

	t := &r.touches
	t.scratch = ebiten.AppendTouchIDs(t.scratch[:0])
	var active [maxPointers]bool
	for _, tid := range t.scratch {
		slot := t.slot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		t.last[slot] = Vec2{float64(tx), float64(ty)}
		buf = append(buf, PointerSample{ID: slot, X: float64(tx), Y: float64(ty), Pressed: true})
	}

	// Release slots whose touch ended.
	for i := 1; i < maxPointers; i++ {
		if t.used[i] && !active[i] {
			buf = append(buf, PointerSample{ID: i, X: t.last[i].X, Y: t.last[i].Y})
			t.used[i] = false
			t.ids[i] = 0
		}
	}
	return buf
}
