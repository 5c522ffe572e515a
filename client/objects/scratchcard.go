package objects

import (
	"context"
	"image/color"
	"math"
	"time"

	"github.com/cbodonnell/flagmaster/client/flags"
	"github.com/cbodonnell/flagmaster/client/fonts"
	"github.com/cbodonnell/flagmaster/client/input"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/layout"
	"github.com/cbodonnell/flagmaster/pkg/scratch"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	placeholderColor = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	solvedBorder     = color.RGBA{R: 34, G: 160, B: 84, A: 255}
)

// ScratchCard draws a country's flag under an erasable gradient overlay.
type ScratchCard struct {
	*BaseObject

	key     types.CardKey
	flagURL string
	loader  *flags.Loader
	rect    layout.Rect

	surface *scratch.Surface
	overlay *ebiten.Image
	canvas  *ebiten.Image
	flag    *ebiten.Image
	failed  bool
	solved  bool
}

type NewScratchCardOptions struct {
	Key     types.CardKey
	FlagURL string
	Loader  *flags.Loader
	Rect    layout.Rect
	// Gradient is the overlay colouring.
	Gradient             scratch.Gradient
	MinScratchPercentage float64
	// OnComplete is called on the update loop when the card is scratched clear.
	OnComplete func(key types.CardKey)
}

func NewScratchCard(id string, opts NewScratchCardOptions) *ScratchCard {
	c := &ScratchCard{
		BaseObject: NewBaseObject(id, nil),
		key:        opts.Key,
		flagURL:    opts.FlagURL,
		loader:     opts.Loader,
		rect:       opts.Rect,
	}
	c.surface = scratch.NewSurface(scratch.SurfaceOptions{
		Width:                opts.Rect.W,
		Height:               opts.Rect.H,
		Gradient:             opts.Gradient,
		MinScratchPercentage: opts.MinScratchPercentage,
		OnComplete: func() {
			if opts.OnComplete != nil {
				opts.OnComplete(c.key)
			}
		},
	})
	c.surface.SetOrigin(float64(opts.Rect.X), float64(opts.Rect.Y))
	return c
}

func (c *ScratchCard) Init() error {
	if c.loader != nil {
		c.loader.Request(context.Background(), c.flagURL)
	}
	return nil
}

func (c *ScratchCard) Destroy() error {
	c.releaseImages()
	return nil
}

func (c *ScratchCard) releaseImages() {
	for _, img := range []**ebiten.Image{&c.overlay, &c.canvas} {
		if *img != nil {
			(*img).Deallocate()
			*img = nil
		}
	}
}

func (c *ScratchCard) Key() types.CardKey {
	return c.key
}

func (c *ScratchCard) Rect() layout.Rect {
	return c.rect
}

// SetRect moves the card. A size change restarts the overlay.
func (c *ScratchCard) SetRect(r layout.Rect) {
	if r.W != c.rect.W || r.H != c.rect.H {
		c.surface.Resize(r.W, r.H)
		c.releaseImages()
	}
	c.rect = r
	c.surface.SetOrigin(float64(r.X), float64(r.Y))
}

func (c *ScratchCard) SetSolved(solved bool) {
	c.solved = solved
}

// HandlePointer applies a pointer event that has been routed to this card.
func (c *ScratchCard) HandlePointer(ev input.PointerEvent) {
	switch ev.Kind {
	case input.PointerDown:
		if ev.Touch {
			c.surface.TouchStart(ev.X, ev.Y)
		} else {
			c.surface.PointerDown(ev.X, ev.Y)
		}
	case input.PointerMove:
		if !c.surface.Contains(ev.X, ev.Y) {
			c.surface.PointerLeave()
			return
		}
		if ev.Touch {
			c.surface.TouchMove(ev.X, ev.Y)
		} else {
			c.surface.PointerMove(ev.X, ev.Y)
		}
	case input.PointerUp:
		if ev.Touch {
			c.surface.TouchEnd()
		} else {
			c.surface.PointerUp()
		}
	}
}

// Scratching reports whether a scratch gesture is in progress on this card.
func (c *ScratchCard) Scratching() bool {
	return c.surface.Active()
}

func (c *ScratchCard) Update() error {
	if c.flag == nil && !c.failed && c.loader != nil {
		img, status := c.loader.Get(c.flagURL)
		switch status {
		case flags.StatusLoaded:
			c.flag = ebiten.NewImageFromImage(img)
		case flags.StatusFailed:
			c.failed = true
		}
	}
	c.surface.Tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (c *ScratchCard) Draw(screen *ebiten.Image) {
	if c.rect.W <= 0 || c.rect.H <= 0 {
		return
	}
	if c.canvas == nil {
		c.canvas = ebiten.NewImage(c.rect.W, c.rect.H)
	}
	card := c.canvas
	card.Clear()

	if c.flag != nil {
		op := &ebiten.DrawImageOptions{}
		b := c.flag.Bounds()
		op.GeoM.Scale(float64(c.rect.W)/float64(b.Dx()), float64(c.rect.H)/float64(b.Dy()))
		op.Filter = ebiten.FilterLinear
		card.DrawImage(c.flag, op)
	} else {
		card.Fill(placeholderColor)
		if c.failed {
			DrawCenteredText(card, fonts.TTFSmallFont, flags.PlaceholderText, float64(c.rect.W)/2, float64(c.rect.H)/2, color.White)
		}
	}

	pixels, dirty := c.surface.Pixels()
	if c.overlay == nil {
		c.overlay = ebiten.NewImage(c.surface.Width(), c.surface.Height())
		dirty = true
	}
	if dirty {
		c.overlay.WritePixels(pixels)
	}
	card.DrawImage(c.overlay, nil)

	if c.solved {
		vector.StrokeRect(card, 1, 1, float32(c.rect.W-2), float32(c.rect.H-2), 3, solvedBorder, false)
	}

	scale, deg := c.surface.AckTransform()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(c.rect.W)/2, -float64(c.rect.H)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(deg * math.Pi / 180)
	op.GeoM.Translate(float64(c.rect.X)+float64(c.rect.W)/2, float64(c.rect.Y)+float64(c.rect.H)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(card, op)
}
