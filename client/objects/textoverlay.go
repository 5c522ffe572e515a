package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/flagmaster/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws centered lines of text over the whole screen.
type TextOverlayObject struct {
	*BaseObject

	lines []string
	face  font.Face
}

func NewTextOverlayObject(id string, lines ...string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
		lines:      lines,
		face:       fonts.TTFLargeFont,
	}
}

func (o *TextOverlayObject) SetLines(lines ...string) {
	o.lines = lines
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	DrawCenteredText(screen, o.face, strings.Join(o.lines, "\n"), float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2, color.White)
}

// DrawCenteredText draws each line of t centered horizontally on cx, with the block centered vertically on cy.
func DrawCenteredText(screen *ebiten.Image, face font.Face, t string, cx, cy float64, clr color.Color) {
	lines := strings.Split(t, "\n")
	lineHeight := float64(face.Metrics().Height.Ceil())
	top := cy - lineHeight*float64(len(lines))/2
	for i, line := range lines {
		bounds, _ := font.BoundString(face, line)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cx-float64((bounds.Max.X-bounds.Min.X).Ceil())/2, top+lineHeight*float64(i)+float64(face.Metrics().Ascent.Ceil()))
		op.ColorScale.ScaleWithColor(clr)
		text.DrawWithOptions(screen, line, face, op)
	}
}
