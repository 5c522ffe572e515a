package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type PointerEventKind int

const (
	PointerDown PointerEventKind = iota
	PointerMove
	PointerUp
)

func (k PointerEventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent is a mouse or touch transition in screen coordinates.
type PointerEvent struct {
	Kind  PointerEventKind
	X     float64
	Y     float64
	Touch bool
}

type Point struct {
	X int
	Y int
}

// Frame is the raw pointer state sampled once per tick.
type Frame struct {
	MousePressed bool
	Mouse        Point
	// Touches holds every active touch keyed by ebiten touch id.
	Touches map[ebiten.TouchID]Point
}

// PointerTracker turns sampled frames into down/move/up events. Only the
// first active touch is tracked so multi-finger input scratches one path.
type PointerTracker struct {
	mouseDown bool
	mouse     Point

	touching bool
	touchID  ebiten.TouchID
	touch    Point
}

func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Sample reads the current ebiten input state.
func Sample() Frame {
	x, y := ebiten.CursorPosition()
	f := Frame{
		MousePressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Mouse:        Point{X: x, Y: y},
		Touches:      make(map[ebiten.TouchID]Point),
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		f.Touches[id] = Point{X: tx, Y: ty}
	}
	// a touch released this tick is no longer listed but must still end the path
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		delete(f.Touches, id)
	}
	return f
}

// Poll samples ebiten and returns the resulting events.
func (t *PointerTracker) Poll() []PointerEvent {
	return t.Step(Sample())
}

// Step advances the tracker by one frame.
func (t *PointerTracker) Step(f Frame) []PointerEvent {
	var events []PointerEvent

	switch {
	case f.MousePressed && !t.mouseDown:
		events = append(events, mouseEvent(PointerDown, f.Mouse))
	case f.MousePressed && t.mouseDown && f.Mouse != t.mouse:
		events = append(events, mouseEvent(PointerMove, f.Mouse))
	case !f.MousePressed && t.mouseDown:
		events = append(events, mouseEvent(PointerUp, f.Mouse))
	}
	t.mouseDown = f.MousePressed
	t.mouse = f.Mouse

	if t.touching {
		p, ok := f.Touches[t.touchID]
		switch {
		case !ok:
			events = append(events, touchEvent(PointerUp, t.touch))
			t.touching = false
		case p != t.touch:
			events = append(events, touchEvent(PointerMove, p))
			t.touch = p
		}
	}
	if !t.touching {
		if id, p, ok := lowestTouch(f.Touches); ok {
			t.touching = true
			t.touchID = id
			t.touch = p
			events = append(events, touchEvent(PointerDown, p))
		}
	}

	return events
}

func lowestTouch(touches map[ebiten.TouchID]Point) (ebiten.TouchID, Point, bool) {
	var (
		bestID ebiten.TouchID
		best   Point
		found  bool
	)
	for id, p := range touches {
		if !found || id < bestID {
			bestID, best, found = id, p, true
		}
	}
	return bestID, best, found
}

func mouseEvent(kind PointerEventKind, p Point) PointerEvent {
	return PointerEvent{Kind: kind, X: float64(p.X), Y: float64(p.Y)}
}

func touchEvent(kind PointerEventKind, p Point) PointerEvent {
	return PointerEvent{Kind: kind, X: float64(p.X), Y: float64(p.Y), Touch: true}
}
