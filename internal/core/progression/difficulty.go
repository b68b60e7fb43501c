package progression

import "strings"

// Difficulty is the closed four-tier rating for completed items
type Difficulty uint8

const (
	// DifficultyTrivial is the lowest tier
	DifficultyTrivial Difficulty = iota
	// DifficultyModerate is the second tier
	DifficultyModerate
	// DifficultyHard is the third tier
	DifficultyHard
	// DifficultyExtreme is the highest tier
	DifficultyExtreme
)

// difficultyWeights is the fixed score weight per tier, monotonically
// increasing with difficulty. Score accumulation uses these unscaled;
// display multiplies by DifficultyDisplayScale
var difficultyWeights = [...]float64{
	DifficultyTrivial:  0.01,
	DifficultyModerate: 0.03,
	DifficultyHard:     0.06,
	DifficultyExtreme:  0.1,
}

// DifficultyDisplayScale turns a difficulty weight into the number shown on
// an item card
const DifficultyDisplayScale = 1000

// Weight returns the fixed score weight for the tier.
// Out-of-range values fall back to the lowest tier
func (d Difficulty) Weight() float64 {
	if int(d) >= len(difficultyWeights) {
		return difficultyWeights[DifficultyTrivial]
	}
	return difficultyWeights[d]
}

// DisplayXP returns the rounded display value for the tier
func (d Difficulty) DisplayXP() int {
	return int(d.Weight()*DifficultyDisplayScale + 0.5)
}

// String implements fmt.Stringer
func (d Difficulty) String() string {
	switch d {
	case DifficultyTrivial:
		return "trivial"
	case DifficultyModerate:
		return "moderate"
	case DifficultyHard:
		return "hard"
	case DifficultyExtreme:
		return "extreme"
	default:
		return "trivial"
	}
}

// ParseDifficulty maps a string onto the enum; unknown values report false
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trivial":
		return DifficultyTrivial, true
	case "moderate":
		return DifficultyModerate, true
	case "hard":
		return DifficultyHard, true
	case "extreme":
		return DifficultyExtreme, true
	default:
		return DifficultyTrivial, false
	}
}
