package risk

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/heartrisk/internal/common"
)

// Fatigue levels are the user-facing stand-in for oldpeak.
const (
	MinFatigueLevel = 1
	MaxFatigueLevel = 10
)

// oldpeakByLevel is indexed by fatigue level; index 0 is unused.
var oldpeakByLevel = [MaxFatigueLevel + 1]float64{
	0, 0.0, 0.4, 0.8, 1.2, 1.5, 1.8, 2.2, 2.6, 3.0, 4.0,
}

// OldpeakFromFatigueLevel looks up the oldpeak for a level in 1..10.
func OldpeakFromFatigueLevel(level int) (float64, error) {
	if level < MinFatigueLevel || level > MaxFatigueLevel {
		return 0, fmt.Errorf("%w: fatigue level must be %d-%d, got %d",
			common.ErrInvalidInput, MinFatigueLevel, MaxFatigueLevel, level)
	}
	return oldpeakByLevel[level], nil
}

// FatigueLevelFromOldpeak returns the level whose oldpeak is nearest to v.
// Ties go to the lower level. Used to redisplay stored assessments.
func FatigueLevelFromOldpeak(v float64) int {
	best := MinFatigueLevel
	bestDist := math.Abs(oldpeakByLevel[best] - v)
	for level := MinFatigueLevel + 1; level <= MaxFatigueLevel; level++ {
		if d := math.Abs(oldpeakByLevel[level] - v); d < bestDist {
			best, bestDist = level, d
		}
	}
	return best
}
