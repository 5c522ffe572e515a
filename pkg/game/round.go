package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/google/uuid"
)

// Card pairs a country with its per-round answer state.
type Card struct {
	Key         types.CardKey
	Country     countries.Country
	Solved      bool
	Revealed    bool
	HintShown   bool
	LastVerdict types.Verdict
}

// Round is one playthrough from new game to game over.
type Round struct {
	ID             uuid.UUID
	Mode           types.Mode
	Cards          []Card
	Score          int
	RemainingCount int
	CorrectCount   int
	IncorrectCount int
	StartedAt      time.Time
	EndedAt        time.Time
	Won            bool
}

func newRound(mode types.Mode, list []countries.Country, now time.Time) *Round {
	id := uuid.New()
	cards := make([]Card, len(list))
	for i, c := range list {
		cards[i] = Card{
			Key:     types.CardKey{RoundID: id, CountryID: c.ID},
			Country: c,
		}
	}
	return &Round{
		ID:             id,
		Mode:           mode,
		Cards:          cards,
		RemainingCount: len(cards),
		StartedAt:      now,
	}
}

func (r *Round) card(countryID int) *Card {
	for i := range r.Cards {
		if r.Cards[i].Country.ID == countryID {
			return &r.Cards[i]
		}
	}
	return nil
}

func (r *Round) clone() *Round {
	c := *r
	c.Cards = append([]Card(nil), r.Cards...)
	return &c
}

func (r *Round) outcome(end time.Time) types.Outcome {
	elapsed := end.Sub(r.StartedAt).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	return types.Outcome{
		Mode:           r.Mode,
		Score:          r.Score,
		CorrectCount:   r.CorrectCount,
		IncorrectCount: r.IncorrectCount,
		ElapsedSeconds: elapsed,
		Won:            r.RemainingCount == 0,
	}
}

// HintText formats the hint shown for a country.
func HintText(c countries.Country) string {
	first := ""
	if r := []rune(c.Name); len(r) > 0 {
		first = strings.ToUpper(string(r[0]))
	}
	return fmt.Sprintf("First letter: %s, Length: %d, Continent: %s", first, c.NameLength, c.Continent)
}
