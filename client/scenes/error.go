package scenes

import (
	"github.com/cbodonnell/flagmaster/client/input"
	"github.com/cbodonnell/flagmaster/client/objects"
)

// ErrorScene shows a message until the player presses to continue.
type ErrorScene struct {
	*BaseScene

	onContinue func()
}

var _ Scene = &ErrorScene{}

func NewErrorScene(msg string, onContinue func()) (Scene, error) {
	return &ErrorScene{
		BaseScene:  NewBaseScene(objects.NewTextOverlayObject("overlay-error", msg)),
		onContinue: onContinue,
	}, nil
}

func (s *ErrorScene) Update() error {
	if input.IsPositiveJustPressed() && s.onContinue != nil {
		s.onContinue()
		return nil
	}
	return s.BaseScene.Update()
}
