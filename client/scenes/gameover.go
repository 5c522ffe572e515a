package scenes

import (
	"fmt"

	"github.com/cbodonnell/flagmaster/client/objects"
	"github.com/cbodonnell/flagmaster/pkg/game"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/stats"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type GameOverScene struct {
	*BaseScene

	outcome     types.Outcome
	stats       *stats.Stats
	onPlayAgain func()
	onMenu      func()
	ui          *ebitenui.UI
}

type GameOverSceneOptions struct {
	Outcome types.Outcome
	// Stats are the mode's stats after the round was recorded.
	Stats       *stats.Stats
	OnPlayAgain func()
	OnMenu      func()
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) (Scene, error) {
	s := opts.Stats
	if s == nil {
		s = stats.Baseline()
	}
	return &GameOverScene{
		BaseScene:   NewBaseScene(objects.NewBaseObject("gameover-root", nil)),
		outcome:     opts.Outcome,
		stats:       s,
		onPlayAgain: opts.OnPlayAgain,
		onMenu:      opts.OnMenu,
	}, nil
}

// Summary returns the result headline and the stats lines shown after a round.
func Summary(outcome types.Outcome, s *stats.Stats) (string, []string) {
	headline := game.MessageGameOver
	if outcome.Won {
		headline = game.MessageVictory
	}

	fastest := "-"
	if s.FastestGameTime != nil {
		fastest = fmt.Sprintf("%.1fs", *s.FastestGameTime)
	}
	lines := []string{
		fmt.Sprintf("Score: %d (%d correct, %d incorrect) in %.1fs", outcome.Score, outcome.CorrectCount, outcome.IncorrectCount, outcome.ElapsedSeconds),
		fmt.Sprintf("%s mode: %d games played, high score %d, total score %d", modeLabel(outcome.Mode), s.GamesPlayed, s.HighScore, s.TotalScore),
		fmt.Sprintf("Answers: %d correct, %d incorrect. Fastest game: %s", s.TotalCorrectAnswers, s.TotalIncorrectAnswers, fastest),
	}
	return headline, lines
}

func (s *GameOverScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *GameOverScene) renderUI() {
	face := normalFace()
	small := fontsSmall()

	rootContainer := verticalContainer(12, widget.Insets{
		Top:    40,
		Left:   60,
		Right:  60,
		Bottom: 40,
	})

	headline, lines := Summary(s.outcome, s.stats)
	headlineColor := errorColor
	if s.outcome.Won {
		headlineColor = successColor
	}
	rootContainer.AddChild(newText(headline, fontsLarge(), headlineColor))
	for _, line := range lines {
		rootContainer.AddChild(newText(line, face, textColor))
	}

	rootContainer.AddChild(newText("Achievements", face, textColor))
	for _, a := range s.stats.Achievements {
		clr := lockedColor
		mark := "[ ]"
		if a.Unlocked {
			clr = successColor
			mark = "[x]"
		}
		rootContainer.AddChild(newText(fmt.Sprintf("%s %s: %s", mark, a.Name, a.Description), small, clr))
	}

	buttons := horizontalContainer(20, widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	buttons.AddChild(newButton("Play Again", face, selectedColor, widget.RowLayoutData{}, func() {
		if s.onPlayAgain != nil {
			s.onPlayAgain()
		}
	}))
	buttons.AddChild(newButton("Menu", face, defaultButtonColor, widget.RowLayoutData{}, func() {
		if s.onMenu != nil {
			s.onMenu()
		}
	}))
	rootContainer.AddChild(buttons)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *GameOverScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
