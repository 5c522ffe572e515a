package layout

import (
	"github.com/cbodonnell/flagmaster/pkg/game/constants"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
)

const (
	// BreakpointSmall is the width from which cards are laid out in two columns.
	BreakpointSmall = 640
	// BreakpointMedium is the width from which hard rounds use three columns.
	BreakpointMedium = 768
)

// CardSize returns the scratch surface size for a card placed in a container
// of the given width: the container width minus padding at a 3:2 aspect
// ratio, shrunk so the height never exceeds 40% of the viewport.
func CardSize(containerWidth, viewportHeight int) (width, height int) {
	width = containerWidth - constants.CardPadding
	if width < 0 {
		width = 0
	}
	height = width * 2 / 3

	maxHeight := int(float64(viewportHeight) * constants.CardMaxViewportFraction)
	if maxHeight < 0 {
		maxHeight = 0
	}
	if height > maxHeight {
		height = maxHeight
		width = height * 3 / 2
	}
	return width, height
}

// Columns returns the number of grid columns for mode at the given viewport width.
func Columns(mode types.Mode, viewportWidth int) int {
	if viewportWidth < BreakpointSmall {
		return 1
	}
	if mode == types.ModeHard && viewportWidth >= BreakpointMedium {
		return 3
	}
	return 2
}

type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && y >= float64(r.Y) && x < float64(r.X+r.W) && y < float64(r.Y+r.H)
}

// Grid lays out count cells of cellHeight in columns across width, starting at
// (x, y) and separated by gap. Cells are filled row by row.
func Grid(x, y, width, columns, count, cellHeight, gap int) []Rect {
	if columns < 1 {
		columns = 1
	}
	cellWidth := (width - gap*(columns-1)) / columns
	if cellWidth < 0 {
		cellWidth = 0
	}
	rects := make([]Rect, count)
	for i := 0; i < count; i++ {
		col, row := i%columns, i/columns
		rects[i] = Rect{
			X: x + col*(cellWidth+gap),
			Y: y + row*(cellHeight+gap),
			W: cellWidth,
			H: cellHeight,
		}
	}
	return rects
}
