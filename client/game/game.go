package game

import (
	"context"
	"fmt"

	"github.com/cbodonnell/flagmaster/client/flags"
	"github.com/cbodonnell/flagmaster/client/input"
	"github.com/cbodonnell/flagmaster/client/scenes"
	"github.com/cbodonnell/flagmaster/client/ui"
	gamecore "github.com/cbodonnell/flagmaster/pkg/game"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/messages"
	"github.com/cbodonnell/flagmaster/pkg/queue"
	"github.com/cbodonnell/flagmaster/pkg/stats"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// session is the round state machine shared by every scene.
	session *gamecore.Session
	// aggregator supplies stats when a finished round has none attached yet.
	aggregator *stats.Aggregator
	events     queue.Queue[messages.Event]
	loader     *flags.Loader
	audio      gamecore.AudioSink
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// gameScene is kept alive while the menu is open so the round continues.
	gameScene *scenes.GameScene

	width  int
	height int
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeOver
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}

const (
	DefaultScreenWidth  = 960
	DefaultScreenHeight = 720
)

type NewGameOptions struct {
	Debug      bool
	Session    *gamecore.Session
	Aggregator *stats.Aggregator
	Events     queue.Queue[messages.Event]
	Loader     *flags.Loader
	Audio      gamecore.AudioSink
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:      opts.Debug,
		session:    opts.Session,
		aggregator: opts.Aggregator,
		events:     opts.Events,
		loader:     opts.Loader,
		audio:      opts.Audio,
		width:      DefaultScreenWidth,
		height:     DefaultScreenHeight,
	}

	if err := g.loadGame(); err != nil {
		return nil, fmt.Errorf("failed to load game scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil && g.scene != scenes.Scene(g.gameScene) {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if scene == scenes.Scene(g.gameScene) {
		return nil
	}
	if r, ok := scene.(scenes.Resizable); ok {
		r.SetSize(g.width, g.height)
	}
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

// loadGame shows the board, creating it on first use.
func (g *Game) loadGame() error {
	if g.gameScene == nil {
		gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
			Session:    g.session,
			Events:     g.events,
			Loader:     g.loader,
			Audio:      g.audio,
			Width:      g.width,
			Height:     g.height,
			OnGameOver: g.onGameOver,
			OnRules: func() {
				if err := g.loadMenu(); err != nil {
					log.Error("Failed to load menu: %v", err)
				}
			},
			OnError: func(err error) {
				if err := g.loadError(err); err != nil {
					log.Error("Failed to load error scene: %v", err)
				}
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create game scene: %v", err)
		}
		if err := gameScene.Init(); err != nil {
			return fmt.Errorf("failed to initialize game scene: %v", err)
		}
		g.gameScene = gameScene
	}
	if err := g.SetScene(g.gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		Mode: g.session.Mode(),
		OnStart: func(mode types.Mode) {
			g.startGame(mode)
		},
		OnBack: func() {
			if err := g.loadGame(); err != nil {
				log.Error("Failed to return to game: %v", err)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

// startGame returns to the board and deals a new round in mode.
func (g *Game) startGame(mode types.Mode) {
	event, err := messages.NewEvent(messages.EventTypeNewGame, &messages.ChangeMode{Mode: mode})
	if err != nil {
		log.Error("Failed to build new game event: %v", err)
		return
	}
	if err := g.events.Enqueue(event); err != nil {
		log.Error("Failed to enqueue new game event: %v", err)
		return
	}
	if err := g.loadGame(); err != nil {
		log.Error("Failed to load game scene: %v", err)
	}
}

func (g *Game) onGameOver(snapshot gamecore.Snapshot) {
	if snapshot.Outcome == nil {
		log.Warn("Round finished without an outcome")
		return
	}
	outcome := *snapshot.Outcome
	s := snapshot.Stats
	if s == nil && g.aggregator != nil {
		s = g.aggregator.Load(context.Background(), outcome.Mode)
	}

	gameOver, err := scenes.NewGameOverScene(scenes.GameOverSceneOptions{
		Outcome: outcome,
		Stats:   s,
		OnPlayAgain: func() {
			g.startGame(outcome.Mode)
		},
		OnMenu: func() {
			if err := g.loadMenu(); err != nil {
				log.Error("Failed to load menu: %v", err)
			}
		},
	})
	if err != nil {
		log.Error("Failed to create game over scene: %v", err)
		return
	}
	if err := g.SetScene(gameOver); err != nil {
		log.Error("Failed to set game over scene: %v", err)
		return
	}
	g.mode = GameModeOver
}

func (g *Game) loadError(err error) error {
	msg := ui.UserMessage(err, "Something went wrong. Press to retry.")
	errorScene, sceneErr := scenes.NewErrorScene(msg, func() {
		g.startGame(g.session.Mode())
	})
	if sceneErr != nil {
		return fmt.Errorf("failed to create error scene: %v", sceneErr)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.mode = GameModeError
	return nil
}

func (g *Game) Update() error {
	if g.mode == GameModePlay && input.IsNegativeJustPressed() && g.session.State() == types.StatePlaying {
		g.gameScene.EndRound()
	}

	// the board keeps consuming session events while another scene is shown
	if g.mode != GameModePlay && g.gameScene != nil {
		g.gameScene.Pump()
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Scene: %s, Session: %s", g.mode, g.session.State()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width = outsideWidth
		g.height = outsideHeight
		if g.gameScene != nil {
			g.gameScene.SetSize(g.width, g.height)
		}
		if r, ok := g.scene.(scenes.Resizable); ok && g.scene != scenes.Scene(g.gameScene) {
			r.SetSize(g.width, g.height)
		}
	}
	return g.width, g.height
}
