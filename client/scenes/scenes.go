package scenes

import (
	"github.com/cbodonnell/flagmaster/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	objects.Lifecycle

	// Scene specific methods
	GetRoot() objects.GameObject
}

// Resizable is implemented by scenes that lay themselves out for the window size.
type Resizable interface {
	SetSize(width, height int)
}

// Overlay is implemented by scenes that can keep processing events while
// another scene is drawn in front of them.
type Overlay interface {
	Pump()
}

type BaseScene struct {
	Root objects.GameObject
	// size is the last window size pushed by the game, zero until the first layout.
	width, height int
}

func NewBaseScene(root objects.GameObject) *BaseScene {
	return &BaseScene{
		Root: root,
	}
}

// SetSize records the window size. Scenes with a size dependent layout override it.
func (s *BaseScene) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Size returns the last size given to SetSize.
func (s *BaseScene) Size() (int, int) {
	return s.width, s.height
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.Root
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.Root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.Root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.Root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	objects.DrawTree(s.Root, screen)
}
