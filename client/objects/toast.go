package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/flagmaster/client/fonts"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	// ToastTTL is how long a toast stays on screen in milliseconds.
	ToastTTL = 3000
	// MaxToasts is the number of toasts shown at once. Older ones are dropped.
	MaxToasts = 4

	toastHeight  = 36
	toastGap     = 8
	toastMargin  = 16
	toastPadding = 12
)

var toastColors = map[string]color.RGBA{
	"success": {R: 34, G: 160, B: 84, A: 235},
	"error":   {R: 200, G: 48, B: 48, A: 235},
	"info":    {R: 48, G: 110, B: 200, A: 235},
}

// Toast is a transient notification drawn in the top right corner.
type Toast struct {
	*BaseObject

	kind    string
	message string
	ttl     int
	slot    int
}

func NewToast(id, kind, message string) *Toast {
	return &Toast{
		BaseObject: NewBaseObject(id, nil),
		kind:       kind,
		message:    message,
		ttl:        ToastTTL,
	}
}

func (o *Toast) Update() error {
	o.ttl -= 1000 / ebiten.TPS()
	if o.ttl <= 0 {
		if err := o.BaseObject.RemoveFromParent(); err != nil {
			return fmt.Errorf("failed to remove toast from parent: %w", err)
		}
	}
	return nil
}

func (o *Toast) Draw(screen *ebiten.Image) {
	f := fonts.TTFSmallFont
	bounds, _ := font.BoundString(f, o.message)
	textWidth := float64((bounds.Max.X - bounds.Min.X).Ceil())
	w := textWidth + 2*toastPadding
	x := float64(screen.Bounds().Dx()) - toastMargin - w
	y := float64(toastMargin + o.slot*(toastHeight+toastGap))

	bg, ok := toastColors[o.kind]
	if !ok {
		bg = toastColors["info"]
	}
	// fade out during the last half second
	alpha := float32(1)
	if o.ttl < 500 {
		alpha = float32(max(o.ttl, 0)) / 500
	}
	bg.A = uint8(float32(bg.A) * alpha)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), toastHeight, bg, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x+toastPadding, y+toastHeight/2+float64(f.Metrics().Ascent.Ceil())/2-2)
	op.ColorScale.ScaleWithColor(color.White)
	op.ColorScale.ScaleAlpha(alpha)
	text.DrawWithOptions(screen, o.message, f, op)
}

// ToastStack positions its toasts top to bottom, newest last.
type ToastStack struct {
	*BaseObject
}

func NewToastStack(id string) *ToastStack {
	return &ToastStack{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 100}),
	}
}

// Push adds a toast, dropping the oldest when the stack is full.
func (s *ToastStack) Push(kind, message string) error {
	children := s.GetChildren()
	for len(children) >= MaxToasts {
		if err := s.RemoveChild(children[0].GetID()); err != nil {
			return err
		}
		children = children[1:]
	}
	id := fmt.Sprintf("toast-%s", uuid.NewString())
	return s.AddChild(id, NewToast(id, kind, message))
}

func (s *ToastStack) Update() error {
	for i, child := range s.GetChildren() {
		if t, ok := child.(*Toast); ok {
			t.slot = i
		}
	}
	return nil
}
