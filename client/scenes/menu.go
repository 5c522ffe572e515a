package scenes

import (
	"fmt"

	"github.com/cbodonnell/flagmaster/client/objects"
	"github.com/cbodonnell/flagmaster/pkg/game/constants"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// Rules lists the instructions shown on the menu, one entry per line.
func Rules() []string {
	return []string{
		"Scratch the card to reveal the flag, then type the country's name.",
		"Alternative names are accepted. Capitalisation does not matter.",
		fmt.Sprintf("Normal: %d flags, %d points each, no time limit or penalty.", constants.NormalCardCount, constants.PointsPerCorrectAnswer),
		fmt.Sprintf("Hard: %d flags in %d seconds, %d points off for each wrong answer.", constants.HardCardCount, int(constants.HardModeDuration.Seconds()), constants.HardWrongAnswerPenalty),
		"Stuck? A hint shows the first letter, length and continent.",
	}
}

type MenuScene struct {
	*BaseScene

	mode    types.Mode
	onStart func(mode types.Mode)
	onBack  func()
	ui      *ebitenui.UI
}

type MenuSceneOptions struct {
	// Mode is highlighted as the current mode.
	Mode types.Mode
	// OnStart is called when a mode is chosen.
	OnStart func(mode types.Mode)
	// OnBack returns to the current game, if one is running.
	OnBack func()
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		mode:      opts.Mode,
		onStart:   opts.OnStart,
		onBack:    opts.OnBack,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	face := normalFace()

	rootContainer := verticalContainer(16, widget.Insets{
		Top:    60,
		Left:   60,
		Right:  60,
		Bottom: 40,
	})
	rootContainer.AddChild(newText("Guess the Flag", fontsLarge(), textColor))
	for _, line := range Rules() {
		rootContainer.AddChild(newText(line, face, mutedColor))
	}

	buttons := horizontalContainer(20, widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	for _, mode := range []types.Mode{types.ModeNormal, types.ModeHard} {
		mode := mode
		clr := defaultButtonColor
		if mode == s.mode {
			clr = selectedColor
		}
		label := fmt.Sprintf("Play %s", modeLabel(mode))
		buttons.AddChild(newButton(label, face, clr, widget.RowLayoutData{}, func() {
			if s.onStart != nil {
				s.onStart(mode)
			}
		}))
	}
	if s.onBack != nil {
		buttons.AddChild(newButton("Back", face, defaultButtonColor, widget.RowLayoutData{}, s.onBack))
	}
	rootContainer.AddChild(buttons)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func modeLabel(mode types.Mode) string {
	if mode == types.ModeHard {
		return "Hard"
	}
	return "Normal"
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
