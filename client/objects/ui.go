package objects

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
)

// UIObject hosts an ebitenui tree inside a scene. The tree can be swapped
// when a scene re-renders.
type UIObject struct {
	*BaseObject

	ui *ebitenui.UI
}

func NewUIObject(id string, ui *ebitenui.UI) *UIObject {
	return &UIObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 10}),
		ui:         ui,
	}
}

func (o *UIObject) SetUI(ui *ebitenui.UI) {
	o.ui = ui
}

func (o *UIObject) Update() error {
	if o.ui != nil {
		o.ui.Update()
	}
	return nil
}

func (o *UIObject) Draw(screen *ebiten.Image) {
	if o.ui != nil {
		o.ui.Draw(screen)
	}
}
