package layout

import (
	"testing"

	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardSize(t *testing.T) {
	tests := []struct {
		name           string
		containerWidth int
		viewportHeight int
		wantW, wantH   int
	}{
		{name: "width bound", containerWidth: 332, viewportHeight: 1000, wantW: 300, wantH: 200},
		{name: "height capped by viewport", containerWidth: 932, viewportHeight: 500, wantW: 300, wantH: 200},
		{name: "tiny container", containerWidth: 10, viewportHeight: 800, wantW: 0, wantH: 0},
		{name: "zero viewport", containerWidth: 400, viewportHeight: 0, wantW: 0, wantH: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := CardSize(tt.containerWidth, tt.viewportHeight)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.LessOrEqual(t, float64(h), float64(tt.viewportHeight)*0.4)
		})
	}
}

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, Columns(types.ModeNormal, 400))
	assert.Equal(t, 1, Columns(types.ModeHard, 400))
	assert.Equal(t, 2, Columns(types.ModeNormal, 1024))
	assert.Equal(t, 2, Columns(types.ModeHard, 700))
	assert.Equal(t, 3, Columns(types.ModeHard, 1024))
}

func TestGrid(t *testing.T) {
	rects := Grid(10, 20, 210, 2, 3, 50, 10)
	require.Len(t, rects, 3)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 100, H: 50}, rects[0])
	assert.Equal(t, Rect{X: 120, Y: 20, W: 100, H: 50}, rects[1])
	assert.Equal(t, Rect{X: 10, Y: 80, W: 100, H: 50}, rects[2])
	assert.True(t, rects[0].Contains(10, 20))
	assert.False(t, rects[0].Contains(110, 20))
}

func TestHitSpace(t *testing.T) {
	round := uuid.New()
	first := types.CardKey{RoundID: round, CountryID: 1}
	second := types.CardKey{RoundID: round, CountryID: 2}

	h := NewHitSpace(640, 480)
	h.Add(first, Rect{X: 10, Y: 10, W: 100, H: 60})
	h.Add(second, Rect{X: 130, Y: 10, W: 100, H: 60})

	key, ok := h.At(50, 30)
	require.True(t, ok)
	assert.Equal(t, first, key)

	key, ok = h.At(229, 69)
	require.True(t, ok)
	assert.Equal(t, second, key)

	_, ok = h.At(120, 30)
	assert.False(t, ok, "gap between cards")
	_, ok = h.At(-5, 30)
	assert.False(t, ok)
	_, ok = h.At(50, 400)
	assert.False(t, ok)

	h.Clear()
	_, ok = h.At(50, 30)
	assert.False(t, ok)
}

func TestHitSpace_Reset(t *testing.T) {
	key := types.CardKey{RoundID: uuid.New(), CountryID: 7}

	h := NewHitSpace(640, 480)
	h.Add(key, Rect{X: 10, Y: 10, W: 100, H: 60})
	h.Reset(640, 480)
	_, ok := h.At(50, 30)
	assert.False(t, ok, "same size reset drops cards")

	h.Add(key, Rect{X: 10, Y: 10, W: 100, H: 60})
	h.Reset(1280, 800)
	_, ok = h.At(50, 30)
	assert.False(t, ok, "resized reset drops cards")

	h.Add(key, Rect{X: 900, Y: 600, W: 100, H: 60})
	got, ok := h.At(950, 630)
	require.True(t, ok)
	assert.Equal(t, key, got)
}
