package types

import (
	"fmt"

	"github.com/cbodonnell/flagmaster/pkg/game/constants"
	"github.com/google/uuid"
)

type Mode string

const (
	ModeNormal Mode = "normal"
	ModeHard   Mode = "hard"
)

// ParseMode parses a mode string. Valid modes are: normal, hard.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNormal, ModeHard:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown game mode: %s", s)
	}
}

func (m Mode) String() string {
	return string(m)
}

// CardCount is the number of distinct countries dealt per round.
func (m Mode) CardCount() int {
	if m == ModeHard {
		return constants.HardCardCount
	}
	return constants.NormalCardCount
}

// Penalty is the score lost on a wrong answer.
func (m Mode) Penalty() int {
	if m == ModeHard {
		return constants.HardWrongAnswerPenalty
	}
	return constants.NormalWrongAnswerPenalty
}

// Timed reports whether rounds in this mode run a countdown.
func (m Mode) Timed() bool {
	return m == ModeHard
}

type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// CardKey identifies a card within a specific round. Client-side card state is
// keyed by it so a new round never inherits state from the previous one.
type CardKey struct {
	RoundID   uuid.UUID
	CountryID int
}

func (k CardKey) String() string {
	return fmt.Sprintf("%s/%d", k.RoundID, k.CountryID)
}
