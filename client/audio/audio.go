package audio

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/cbodonnell/flagmaster/pkg/game"
	"github.com/cbodonnell/flagmaster/pkg/log"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100
	// Volume is the peak amplitude of synthesized tones as a fraction of full scale.
	Volume = 0.25
	// bytesPerFrame is 16-bit little endian stereo
	bytesPerFrame = 4
)

// Note is a tone of Freq hertz held for Duration. A zero Freq is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

var cueNotes = map[game.Cue][]Note{
	game.CueStart: {
		{Freq: 523.25, Duration: 90 * time.Millisecond},
		{Freq: 783.99, Duration: 120 * time.Millisecond},
	},
	game.CueCorrect: {
		{Freq: 659.25, Duration: 80 * time.Millisecond},
		{Freq: 987.77, Duration: 140 * time.Millisecond},
	},
	game.CueIncorrect: {
		{Freq: 196.00, Duration: 120 * time.Millisecond},
		{Freq: 0, Duration: 30 * time.Millisecond},
		{Freq: 164.81, Duration: 180 * time.Millisecond},
	},
	game.CueVictory: {
		{Freq: 523.25, Duration: 110 * time.Millisecond},
		{Freq: 659.25, Duration: 110 * time.Millisecond},
		{Freq: 783.99, Duration: 110 * time.Millisecond},
		{Freq: 1046.50, Duration: 280 * time.Millisecond},
	},
	game.CueGameOver: {
		{Freq: 392.00, Duration: 160 * time.Millisecond},
		{Freq: 329.63, Duration: 160 * time.Millisecond},
		{Freq: 261.63, Duration: 320 * time.Millisecond},
	},
}

// Synthesize renders notes as 16-bit stereo PCM with a short attack and
// release on every note so consecutive tones do not click.
func Synthesize(sampleRate int, notes []Note) []byte {
	total := 0
	for _, n := range notes {
		total += frames(sampleRate, n.Duration)
	}
	buf := make([]byte, total*bytesPerFrame)

	offset := 0
	for _, n := range notes {
		count := frames(sampleRate, n.Duration)
		ramp := min(count/10, sampleRate/200)
		for i := 0; i < count; i++ {
			var v float64
			if n.Freq > 0 {
				env := 1.0
				if ramp > 0 {
					if i < ramp {
						env = float64(i) / float64(ramp)
					} else if i >= count-ramp {
						env = float64(count-1-i) / float64(ramp)
					}
				}
				v = math.Sin(2*math.Pi*n.Freq*float64(i)/float64(sampleRate)) * env * Volume
			}
			sample := uint16(int16(v * math.MaxInt16))
			p := (offset + i) * bytesPerFrame
			binary.LittleEndian.PutUint16(buf[p:], sample)
			binary.LittleEndian.PutUint16(buf[p+2:], sample)
		}
		offset += count
	}
	return buf
}

func frames(sampleRate int, d time.Duration) int {
	return int(float64(sampleRate) * d.Seconds())
}

// Player plays game cues through the ebiten audio context. It must be used
// from the ebiten update loop.
type Player struct {
	muted bool

	once    sync.Once
	context *ebitenaudio.Context
	players map[game.Cue]*ebitenaudio.Player
}

var _ game.AudioSink = &Player{}

type NewPlayerOptions struct {
	// Muted disables playback entirely, for environments without an audio device.
	Muted bool
}

func NewPlayer(opts NewPlayerOptions) *Player {
	return &Player{
		muted:   opts.Muted,
		players: make(map[game.Cue]*ebitenaudio.Player),
	}
}

func (p *Player) init() {
	p.once.Do(func() {
		p.context = ebitenaudio.CurrentContext()
		if p.context == nil {
			p.context = ebitenaudio.NewContext(SampleRate)
		}
	})
}

// Play starts cue from the beginning. Unknown cues and playback failures are logged.
func (p *Player) Play(cue game.Cue) {
	if p.muted {
		return
	}
	notes, ok := cueNotes[cue]
	if !ok {
		log.Warn("Unknown audio cue: %s", cue)
		return
	}
	p.init()

	player, ok := p.players[cue]
	if !ok {
		player = p.context.NewPlayerFromBytes(Synthesize(p.context.SampleRate(), notes))
		p.players[cue] = player
	}
	if err := player.Rewind(); err != nil {
		log.Error("Failed to rewind %s cue: %v", cue, err)
		return
	}
	player.Play()
}
