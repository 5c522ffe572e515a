package stats

import (
	"github.com/cbodonnell/flagmaster/pkg/game/constants"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
)

const (
	AchievementFirstWin     = "first_win"
	AchievementPerfectGame  = "perfect_game"
	AchievementSpeedDemon   = "speed_demon"
	AchievementGlobeTrotter = "globe_trotter"
)

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Stats are the cumulative statistics for one game mode.
type Stats struct {
	GamesPlayed           int           `json:"gamesPlayed"`
	TotalScore            int           `json:"totalScore"`
	HighScore             int           `json:"highScore"`
	TotalCorrectAnswers   int           `json:"totalCorrectAnswers"`
	TotalIncorrectAnswers int           `json:"totalIncorrectAnswers"`
	FastestGameTime       *float64      `json:"fastestGameTime"`
	Achievements          []Achievement `json:"achievements"`
}

func baselineAchievements() []Achievement {
	return []Achievement{
		{ID: AchievementFirstWin, Name: "First Win", Description: "Win your first game"},
		{ID: AchievementPerfectGame, Name: "Perfect Game", Description: "Win a game without any incorrect answers"},
		{ID: AchievementSpeedDemon, Name: "Speed Demon", Description: "Win a hard mode game in under 1 minute"},
		{ID: AchievementGlobeTrotter, Name: "Globe Trotter", Description: "Play 50 games"},
	}
}

// Baseline returns zeroed stats with every achievement locked.
func Baseline() *Stats {
	return &Stats{
		Achievements: baselineAchievements(),
	}
}

// Clone returns a deep copy.
func (s *Stats) Clone() *Stats {
	c := *s
	if s.FastestGameTime != nil {
		v := *s.FastestGameTime
		c.FastestGameTime = &v
	}
	c.Achievements = append([]Achievement(nil), s.Achievements...)
	return &c
}

// normalize adds any baseline achievement missing from s, keeping stored ones as they are.
func (s *Stats) normalize() {
	have := make(map[string]struct{}, len(s.Achievements))
	for _, a := range s.Achievements {
		have[a.ID] = struct{}{}
	}
	for _, a := range baselineAchievements() {
		if _, ok := have[a.ID]; !ok {
			s.Achievements = append(s.Achievements, a)
		}
	}
}

// Achievement returns the achievement with id, if present.
func (s *Stats) Achievement(id string) (Achievement, bool) {
	for _, a := range s.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

func (s *Stats) unlock(id string) {
	for i := range s.Achievements {
		if s.Achievements[i].ID == id {
			s.Achievements[i].Unlocked = true
			return
		}
	}
}

// Apply folds a finished round into a copy of s and returns it.
// Achievements only ever move from locked to unlocked.
func (s *Stats) Apply(outcome types.Outcome) *Stats {
	next := s.Clone()
	next.normalize()

	next.GamesPlayed++
	next.TotalScore += outcome.Score
	next.HighScore = max(next.HighScore, outcome.Score)
	next.TotalCorrectAnswers += outcome.CorrectCount
	next.TotalIncorrectAnswers += outcome.IncorrectCount
	if next.FastestGameTime == nil || outcome.ElapsedSeconds < *next.FastestGameTime {
		elapsed := outcome.ElapsedSeconds
		next.FastestGameTime = &elapsed
	}

	if outcome.Score > 0 {
		next.unlock(AchievementFirstWin)
	}
	if outcome.IncorrectCount == 0 && outcome.Score > 0 {
		next.unlock(AchievementPerfectGame)
	}
	if outcome.Mode == types.ModeHard && outcome.ElapsedSeconds < constants.SpeedDemonSeconds && outcome.Score > 0 {
		next.unlock(AchievementSpeedDemon)
	}
	if next.GamesPlayed >= constants.GlobeTrotterGames {
		next.unlock(AchievementGlobeTrotter)
	}

	return next
}
