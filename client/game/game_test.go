package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameModeString(t *testing.T) {
	assert.Equal(t, "Menu", GameModeMenu.String())
	assert.Equal(t, "Play", GameModePlay.String())
	assert.Equal(t, "Over", GameModeOver.String())
	assert.Equal(t, "Error", GameModeError.String())
	assert.Equal(t, "Unknown", GameMode(42).String())
}

func TestLayoutFollowsWindow(t *testing.T) {
	g := &Game{width: DefaultScreenWidth, height: DefaultScreenHeight}

	w, h := g.Layout(1280, 800)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 800, h)

	// a zero size while minimized keeps the previous layout
	w, h = g.Layout(0, 0)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 800, h)
}
