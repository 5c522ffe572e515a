package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/cbodonnell/flagmaster/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	notes := []Note{
		{Freq: 440, Duration: 100 * time.Millisecond},
		{Freq: 0, Duration: 50 * time.Millisecond},
	}
	buf := Synthesize(1000, notes)
	require.Len(t, buf, 150*bytesPerFrame)

	sample := func(i int) int16 {
		return int16(binary.LittleEndian.Uint16(buf[i*bytesPerFrame:]))
	}

	// envelope starts silent
	assert.Equal(t, int16(0), sample(0))
	// left and right channels carry the same sample
	for i := 0; i < 150; i++ {
		p := i * bytesPerFrame
		assert.Equal(t, buf[p:p+2], buf[p+2:p+4])
	}
	// rest is silent
	for i := 100; i < 150; i++ {
		assert.Equal(t, int16(0), sample(i))
	}

	peak := int16(0)
	for i := 0; i < 100; i++ {
		if s := sample(i); s > peak {
			peak = s
		}
	}
	assert.Greater(t, peak, int16(0))
	assert.LessOrEqual(t, float64(peak), Volume*32767+1)
}

func TestCueNotes(t *testing.T) {
	for _, cue := range []game.Cue{game.CueStart, game.CueCorrect, game.CueIncorrect, game.CueVictory, game.CueGameOver} {
		assert.NotEmpty(t, cueNotes[cue], cue)
	}
}

func TestPlayer_muted(t *testing.T) {
	p := NewPlayer(NewPlayerOptions{Muted: true})
	p.Play(game.CueVictory)
	assert.Empty(t, p.players)
}
