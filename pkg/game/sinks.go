package game

import (
	"context"

	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/stats"
)

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notifier receives fire-and-forget toast messages.
type Notifier interface {
	Notify(kind NotificationKind, message string)
}

type Cue string

const (
	CueStart     Cue = "start"
	CueCorrect   Cue = "correct"
	CueIncorrect Cue = "incorrect"
	CueVictory   Cue = "victory"
	CueGameOver  Cue = "gameOver"
)

// AudioSink plays sound cues. Implementations log and swallow playback errors.
type AudioSink interface {
	Play(cue Cue)
}

// Recorder folds a finished round into persisted statistics.
type Recorder interface {
	RecordRound(ctx context.Context, outcome types.Outcome) (*stats.Stats, error)
}

const (
	MessageWelcome   = "Welcome to Guess the Flag! Start guessing to begin the game."
	MessageNewGame   = "New game started!"
	MessageCorrect   = "Correct answer!"
	MessageIncorrect = "Incorrect answer. Try again!"
	MessageVictory   = "Congratulations! You won!"
	MessageGameOver  = "Game over!"
)

type noopNotifier struct{}

func (noopNotifier) Notify(NotificationKind, string) {}

type noopAudio struct{}

func (noopAudio) Play(Cue) {}
