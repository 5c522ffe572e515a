package layout

import (
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/solarlune/resolv"
)

const (
	hitSpaceCellSize = 8

	tagCard    = "card"
	tagPointer = "pointer"
)

// HitSpace resolves pointer positions to the card under them.
type HitSpace struct {
	width   int
	height  int
	space   *resolv.Space
	pointer *resolv.Object
	cards   []*resolv.Object
}

func NewHitSpace(width, height int) *HitSpace {
	h := &HitSpace{}
	h.resize(width, height)
	return h
}

func (h *HitSpace) resize(width, height int) {
	h.width = width
	h.height = height
	h.space = resolv.NewSpace(width, height, hitSpaceCellSize, hitSpaceCellSize)
	h.pointer = resolv.NewObject(0, 0, 1, 1, tagPointer)
	h.space.Add(h.pointer)
	h.cards = nil
}

// Reset removes every card, rebuilding the space only when the size changed.
func (h *HitSpace) Reset(width, height int) {
	if width == h.width && height == h.height {
		h.Clear()
		return
	}
	h.resize(width, height)
}

// Add registers the area of a card.
func (h *HitSpace) Add(key types.CardKey, r Rect) {
	obj := resolv.NewObject(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), tagCard)
	obj.Data = key
	h.space.Add(obj)
	h.cards = append(h.cards, obj)
}

// Clear removes every card.
func (h *HitSpace) Clear() {
	h.space.Remove(h.cards...)
	h.cards = nil
}

// At returns the card under (x, y).
func (h *HitSpace) At(x, y float64) (types.CardKey, bool) {
	if x < 0 || y < 0 || x >= float64(h.width) || y >= float64(h.height) {
		return types.CardKey{}, false
	}
	h.pointer.Position.X = x
	h.pointer.Position.Y = y
	h.pointer.Update()

	collision := h.pointer.Check(0, 0, tagCard)
	if collision == nil {
		return types.CardKey{}, false
	}
	// cells only narrow the search; confirm the exact bounds
	for _, obj := range collision.Objects {
		if x >= obj.Position.X && y >= obj.Position.Y && x < obj.Position.X+obj.Size.X && y < obj.Position.Y+obj.Size.Y {
			key, ok := obj.Data.(types.CardKey)
			if ok {
				return key, true
			}
		}
	}
	return types.CardKey{}, false
}
