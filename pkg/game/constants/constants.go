package constants

import "time"

const (
	// NormalCardCount is the number of flags dealt in a normal round
	NormalCardCount int = 4
	// HardCardCount is the number of flags dealt in a hard round
	HardCardCount int = 6

	// PointsPerCorrectAnswer is awarded in both modes
	PointsPerCorrectAnswer int = 25
	// NormalWrongAnswerPenalty is subtracted for a wrong guess in normal mode
	NormalWrongAnswerPenalty int = 0
	// HardWrongAnswerPenalty is subtracted for a wrong guess in hard mode (floored at zero)
	HardWrongAnswerPenalty int = 5

	// HardModeDuration is the countdown for a hard round
	HardModeDuration time.Duration = 180 * time.Second

	// ScratchRadius is the radius of the disc cleared by one erase, in pixels
	ScratchRadius float64 = 30
	// DefaultMinScratchPercentage is the reveal threshold when none is configured
	DefaultMinScratchPercentage float64 = 50
	// CardMinScratchPercentage is the reveal threshold used for flag cards
	CardMinScratchPercentage float64 = 70

	// CardPadding is the horizontal padding subtracted from the container width
	CardPadding int = 32
	// CardMaxViewportFraction caps the card height relative to the viewport
	CardMaxViewportFraction float64 = 0.4

	// SpeedDemonSeconds is the time limit for the speed_demon achievement
	SpeedDemonSeconds float64 = 60
	// GlobeTrotterGames is the games played for the globe_trotter achievement
	GlobeTrotterGames int = 50
)

// CardGradient is the overlay gradient used on flag cards.
var CardGradient = [3]string{"#A97CF8", "#F38CB8", "#FDCC92"}
