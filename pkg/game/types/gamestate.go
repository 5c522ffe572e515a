package types

type State int

const (
	StateInitial State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameOver"
	}
	return "unknown"
}

// Outcome is the summary of a finished round handed to the stats aggregator.
type Outcome struct {
	Mode           Mode    `json:"mode"`
	Score          int     `json:"score"`
	CorrectCount   int     `json:"correctCount"`
	IncorrectCount int     `json:"incorrectCount"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	Won            bool    `json:"won"`
}
