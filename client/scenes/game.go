package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/cbodonnell/flagmaster/client/flags"
	"github.com/cbodonnell/flagmaster/client/input"
	"github.com/cbodonnell/flagmaster/client/objects"
	"github.com/cbodonnell/flagmaster/pkg/game"
	"github.com/cbodonnell/flagmaster/pkg/game/constants"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/layout"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/messages"
	"github.com/cbodonnell/flagmaster/pkg/queue"
	"github.com/cbodonnell/flagmaster/pkg/scratch"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	headerHeight   = 120
	controlsHeight = 72
	gridGap        = 16
	gridMargin     = 16
	// gameOverDelay is the number of ticks the finished board stays visible.
	gameOverDelay = 90
)

var (
	timerTrack = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	timerFill  = color.RGBA{R: 243, G: 140, B: 184, A: 255}
)

type cardControls struct {
	input    *widget.TextInput
	submit   *widget.Button
	hint     *widget.Button
	feedback *widget.Text
	hintText *widget.Text
}

type GameScene struct {
	*BaseScene

	session    *game.Session
	dispatcher *dispatcher
	loader     *flags.Loader
	gradient   scratch.Gradient
	onGameOver func(snapshot game.Snapshot)
	onRules    func()
	onError    func(err error)

	width  int
	height int

	ui       *objects.UIObject
	toasts   *objects.ToastStack
	pointer  *input.PointerTracker
	hitSpace *layout.HitSpace
	active   *objects.ScratchCard

	roundID     uuid.UUID
	mode        types.Mode
	cards       map[int]*objects.ScratchCard
	controls    map[int]*cardControls
	hints       map[int]string
	statusText  *widget.Text
	timerText   *widget.Text
	endButton   *widget.Button
	layoutDirty bool

	overTicks int
	reported  bool
}

type GameSceneOptions struct {
	Session *game.Session
	Events  queue.Queue[messages.Event]
	Loader  *flags.Loader
	Audio   game.AudioSink
	// Width and Height are the initial screen size.
	Width  int
	Height int
	// OnGameOver is called once per finished round after a short delay.
	OnGameOver func(snapshot game.Snapshot)
	// OnRules opens the rules and mode selection menu.
	OnRules func()
	// OnError is called when a round could not be started and nothing is on the board.
	OnError func(err error)
}

var _ Scene = &GameScene{}
var _ Overlay = &GameScene{}
var _ Resizable = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	gradient, err := scratch.ParseGradient(constants.CardGradient)
	if err != nil {
		return nil, fmt.Errorf("failed to parse card gradient: %v", err)
	}

	root := objects.NewSortedZIndexObject("game-root")
	s := &GameScene{
		BaseScene:  NewBaseScene(root),
		session:    opts.Session,
		loader:     opts.Loader,
		gradient:   gradient,
		onGameOver: opts.OnGameOver,
		onRules:    opts.OnRules,
		onError:    opts.OnError,
		width:      opts.Width,
		height:     opts.Height,
		pointer:    input.NewPointerTracker(),
		hitSpace:   layout.NewHitSpace(opts.Width, opts.Height),
		cards:      make(map[int]*objects.ScratchCard),
		controls:   make(map[int]*cardControls),
		hints:      make(map[int]string),
	}
	s.dispatcher = &dispatcher{
		session:       opts.Session,
		events:        opts.Events,
		audio:         opts.Audio,
		onToast:       s.pushToast,
		onVerdict:     s.showVerdict,
		onHint:        s.showHint,
		onStartFailed: s.startFailed,
	}
	return s, nil
}

func (s *GameScene) Init() error {
	if err := s.BaseScene.Init(); err != nil {
		return err
	}
	s.toasts = objects.NewToastStack("toasts")
	if err := s.Root.AddChild("toasts", s.toasts); err != nil {
		return fmt.Errorf("failed to add toasts: %v", err)
	}
	s.ui = objects.NewUIObject("game-ui", nil)
	if err := s.Root.AddChild("game-ui", s.ui); err != nil {
		return fmt.Errorf("failed to add ui: %v", err)
	}

	snap := s.session.Snapshot()
	s.mode = snap.Mode
	if snap.State == types.StateInitial {
		s.dispatcher.startAsync(snap.Mode, false)
	}
	s.sync(snap)
	s.render(snap)
	return nil
}

// SetSize is called by the game whenever the window size changes.
func (s *GameScene) SetSize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.layoutDirty = true
}

func (s *GameScene) pushToast(kind, message string) {
	if err := s.toasts.Push(kind, message); err != nil {
		log.Error("Failed to show toast: %v", err)
	}
}

func (s *GameScene) showVerdict(countryID int, verdict types.Verdict) {
	c, ok := s.controls[countryID]
	if !ok {
		return
	}
	if verdict == types.VerdictCorrect {
		c.input.SetText("")
	}
}

func (s *GameScene) showHint(countryID int, hint string) {
	s.hints[countryID] = hint
}

func (s *GameScene) startFailed(err error) {
	if s.session.State() == types.StateInitial && s.onError != nil {
		s.onError(err)
	}
}

func (s *GameScene) Update() error {
	s.dispatcher.drain()

	snap := s.session.Snapshot()
	if s.sync(snap) || s.layoutDirty || snap.Mode != s.mode {
		s.mode = snap.Mode
		s.layoutDirty = false
		s.render(snap)
	}
	s.refresh(snap)
	s.handlePointer(snap)

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	s.checkGameOver(snap)
	return nil
}

// Pump handles pending session events while another scene is in front of the board.
func (s *GameScene) Pump() {
	s.dispatcher.drain()
}

// EndRound asks the session to finish the current round.
func (s *GameScene) EndRound() {
	s.dispatcher.enqueue(messages.EventTypeEndGame, nil)
}

// sync rebuilds the scratch cards when a new round has been dealt and reports whether it did.
func (s *GameScene) sync(snap game.Snapshot) bool {
	if snap.Round == nil || snap.Round.ID == s.roundID {
		return false
	}

	for id := range s.cards {
		if err := s.Root.RemoveChild(cardObjectID(id)); err != nil {
			log.Error("Failed to remove card %d: %v", id, err)
		}
	}
	s.cards = make(map[int]*objects.ScratchCard)
	s.hints = make(map[int]string)
	s.active = nil
	s.roundID = snap.Round.ID
	s.overTicks = 0
	s.reported = false

	for _, card := range snap.Round.Cards {
		key := card.Key
		obj := objects.NewScratchCard(cardObjectID(key.CountryID), objects.NewScratchCardOptions{
			Key:                  key,
			FlagURL:              card.Country.FlagURL,
			Loader:               s.loader,
			Gradient:             s.gradient,
			MinScratchPercentage: constants.CardMinScratchPercentage,
			OnComplete: func(key types.CardKey) {
				s.dispatcher.enqueue(messages.EventTypeScratchComplete, &messages.CardRef{Key: key})
			},
		})
		if err := s.Root.AddChild(obj.GetID(), obj); err != nil {
			log.Error("Failed to add card %d: %v", key.CountryID, err)
			continue
		}
		s.cards[key.CountryID] = obj
	}
	return true
}

func cardObjectID(countryID int) string {
	return fmt.Sprintf("card-%d", countryID)
}

// cardRects lays the cards out in a grid below the header, shrinking them to fit the screen height.
func (s *GameScene) cardRects(mode types.Mode, count int) ([]layout.Rect, []layout.Rect) {
	columns := layout.Columns(mode, s.width)
	rows := (count + columns - 1) / columns
	gridWidth := s.width - 2*gridMargin
	cellWidth := (gridWidth - gridGap*(columns-1)) / columns

	cardW, cardH := layout.CardSize(cellWidth, s.height)
	if rows > 0 {
		maxH := (s.height - headerHeight - rows*(controlsHeight+gridGap)) / rows
		if cardH > maxH && maxH > 0 {
			cardW = cardW * maxH / cardH
			cardH = maxH
		}
	}

	cells := layout.Grid(gridMargin, headerHeight, gridWidth, columns, count, cardH+controlsHeight, gridGap)
	cardRects := make([]layout.Rect, len(cells))
	controlRects := make([]layout.Rect, len(cells))
	for i, cell := range cells {
		cardRects[i] = layout.Rect{X: cell.X + (cell.W-cardW)/2, Y: cell.Y, W: cardW, H: cardH}
		controlRects[i] = layout.Rect{X: cardRects[i].X, Y: cell.Y + cardH + 4, W: cardW, H: controlsHeight - 4}
	}
	return cardRects, controlRects
}

// render rebuilds the widget tree and card placement for the current round.
func (s *GameScene) render(snap game.Snapshot) {
	face := normalFace()

	root := verticalContainer(8, widget.Insets{Top: 12, Left: gridMargin, Right: gridMargin})
	root.AddChild(newText("Guess the Flag", fontsLarge(), textColor))

	buttons := horizontalContainer(10, widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	for _, mode := range []types.Mode{types.ModeNormal, types.ModeHard} {
		mode := mode
		clr := defaultButtonColor
		if mode == snap.Mode {
			clr = selectedColor
		}
		buttons.AddChild(newButton(modeLabel(mode), face, clr, widget.RowLayoutData{}, func() {
			s.dispatcher.enqueue(messages.EventTypeChangeMode, &messages.ChangeMode{Mode: mode})
		}))
	}
	buttons.AddChild(newButton("New Game", face, defaultButtonColor, widget.RowLayoutData{}, func() {
		s.dispatcher.enqueue(messages.EventTypeNewGame, &messages.ChangeMode{Mode: s.session.Mode()})
	}))
	s.endButton = newButton("End Game", face, defaultButtonColor, widget.RowLayoutData{}, func() {
		s.dispatcher.enqueue(messages.EventTypeEndGame, nil)
	})
	buttons.AddChild(s.endButton)
	buttons.AddChild(newButton("Rules", face, defaultButtonColor, widget.RowLayoutData{}, func() {
		if s.onRules != nil {
			s.onRules()
		}
	}))
	root.AddChild(buttons)

	status := horizontalContainer(24, widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	s.statusText = newText("", face, textColor)
	s.timerText = newText("", face, textColor)
	status.AddChild(s.statusText)
	status.AddChild(s.timerText)
	root.AddChild(status)

	ebitenUI := &ebitenui.UI{
		Container: root,
	}

	s.controls = make(map[int]*cardControls)
	s.hitSpace.Reset(s.width, s.height)
	if snap.Round != nil {
		cardRects, controlRects := s.cardRects(snap.Round.Mode, len(snap.Round.Cards))
		for i, card := range snap.Round.Cards {
			obj, ok := s.cards[card.Key.CountryID]
			if !ok {
				continue
			}
			obj.SetRect(cardRects[i])
			s.hitSpace.Add(card.Key, cardRects[i])

			controls, window := s.newCardControls(card, controlRects[i])
			s.controls[card.Key.CountryID] = controls
			ebitenUI.AddWindow(window)
		}
	}

	s.ui.SetUI(ebitenUI)
}

func (s *GameScene) newCardControls(card game.Card, r layout.Rect) (*cardControls, *widget.Window) {
	face := fontsSmall()
	countryID := card.Key.CountryID
	key := card.Key

	container := verticalContainer(4, widget.Insets{})
	row := horizontalContainer(6, widget.RowLayoutData{Stretch: true})

	c := &cardControls{}
	c.input = newTextInput("Country name", face, widget.RowLayoutData{Stretch: true})
	submit := func(text string) {
		s.dispatcher.enqueue(messages.EventTypeSubmitAnswer, &messages.SubmitAnswer{CountryID: countryID, Text: text})
	}
	c.input.SubmitEvent.AddHandler(func(args interface{}) {
		if a, ok := args.(*widget.TextInputChangedEventArgs); ok {
			submit(a.InputText)
		}
	})
	c.submit = newButton("Submit", face, defaultButtonColor, widget.RowLayoutData{}, func() {
		submit(c.input.GetText())
	})
	c.hint = newButton("Hint", face, defaultButtonColor, widget.RowLayoutData{}, func() {
		s.dispatcher.enqueue(messages.EventTypeHint, &messages.CardRef{Key: key})
	})
	row.AddChild(c.input)
	row.AddChild(c.submit)
	row.AddChild(c.hint)
	container.AddChild(row)

	c.feedback = newText("", face, textColor)
	c.hintText = newText("", face, mutedColor)
	container.AddChild(c.feedback)
	container.AddChild(c.hintText)

	window := widget.NewWindow(
		widget.WindowOpts.Contents(container),
	)
	window.SetLocation(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H))
	return c, window
}

// refresh copies the snapshot into labels and enables controls.
func (s *GameScene) refresh(snap game.Snapshot) {
	playing := snap.State == types.StatePlaying
	if s.endButton != nil {
		s.endButton.GetWidget().Disabled = !playing
	}

	if snap.Round == nil {
		s.statusText.Label = "Loading countries..."
		s.timerText.Label = ""
		return
	}
	s.statusText.Label = fmt.Sprintf("Score: %d   Flags remaining: %d", snap.Round.Score, snap.Round.RemainingCount)
	s.timerText.Label = ""
	if snap.Round.Mode.Timed() && playing {
		s.timerText.Label = fmt.Sprintf("Time left: %d seconds", int(snap.TimeLeft.Seconds()+0.999))
	}

	for _, card := range snap.Round.Cards {
		id := card.Key.CountryID
		if obj, ok := s.cards[id]; ok {
			obj.SetSolved(card.Solved)
		}
		c, ok := s.controls[id]
		if !ok {
			continue
		}
		disabled := card.Solved || !playing
		c.input.GetWidget().Disabled = disabled
		c.submit.GetWidget().Disabled = disabled
		c.hint.GetWidget().Disabled = disabled || card.HintShown

		switch card.LastVerdict {
		case types.VerdictCorrect:
			c.feedback.Label = "Correct! " + card.Country.Name
			c.feedback.Color = successColor
		case types.VerdictIncorrect:
			c.feedback.Label = "Incorrect. Try again!"
			c.feedback.Color = errorColor
		default:
			c.feedback.Label = ""
		}
		if hint, ok := s.hints[id]; ok && !card.Solved {
			c.hintText.Label = hint
		} else if card.HintShown && !card.Solved {
			c.hintText.Label = game.HintText(card.Country)
		} else {
			c.hintText.Label = ""
		}
	}
}

// handlePointer routes pointer input to the card under it. A scratch stays
// with the card it started on until the pointer lifts or leaves it.
func (s *GameScene) handlePointer(snap game.Snapshot) {
	for _, ev := range s.pointer.Poll() {
		switch ev.Kind {
		case input.PointerDown:
			key, ok := s.hitSpace.At(ev.X, ev.Y)
			if !ok || key.RoundID != s.roundID {
				continue
			}
			card, ok := s.cards[key.CountryID]
			if !ok {
				continue
			}
			s.active = card
			card.HandlePointer(ev)
		case input.PointerMove:
			if s.active == nil {
				continue
			}
			s.active.HandlePointer(ev)
			if !s.active.Scratching() {
				s.active = nil
			}
		case input.PointerUp:
			if s.active == nil {
				continue
			}
			s.active.HandlePointer(ev)
			s.active = nil
		}
	}
}

func (s *GameScene) checkGameOver(snap game.Snapshot) {
	if snap.State != types.StateGameOver || snap.Round == nil || snap.Round.ID != s.roundID || s.reported {
		return
	}
	s.overTicks++
	if s.overTicks < gameOverDelay {
		return
	}
	s.reported = true
	if s.onGameOver != nil {
		s.onGameOver(snap)
	}
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	s.BaseScene.Draw(screen)

	snap := s.session.Snapshot()
	if snap.State == types.StatePlaying && snap.Round != nil && snap.Round.Mode.Timed() {
		w := float32(s.width - 2*gridMargin)
		frac := float32(snap.TimeLeft.Seconds() / constants.HardModeDuration.Seconds())
		vector.DrawFilledRect(screen, gridMargin, headerHeight-10, w, 6, timerTrack, false)
		vector.DrawFilledRect(screen, gridMargin, headerHeight-10, w*frac, 6, timerFill, false)
	}
}
