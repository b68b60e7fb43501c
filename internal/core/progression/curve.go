// Package progression holds the pure score and level arithmetic for the
// portfolio HUD. No I/O, no clocks, no deps; everything here is deterministic
package progression

import "math"

// CurveK is the quadratic curve constant: reaching level L costs K*L^2 score
const CurveK = 50

// LevelForScore maps a total score onto the inverse-quadratic curve.
// Score 0 is level 0, and invalid (negative) scores clamp to level 0 so
// callers never observe an undefined level
func LevelForScore(score int) int {
	if score <= 0 {
		return 0
	}
	level := int(math.Sqrt(float64(score) / CurveK))
	// settle float rounding at the exact threshold boundaries
	for XPFloor(level+1) <= score {
		level++
	}
	for level > 0 && XPFloor(level) > score {
		level--
	}
	return level
}

// XPFloor returns the score required to reach level
func XPFloor(level int) int {
	if level <= 0 {
		return 0
	}
	return CurveK * level * level
}

// XPCeiling returns the score required to reach level+1
func XPCeiling(level int) int {
	if level < 0 {
		level = 0
	}
	return CurveK * (level + 1) * (level + 1)
}

// ProgressFraction reports how far into the current level the score sits,
// clamped to [0,1]. The denominator is never zero: consecutive quadratic
// thresholds are always distinct
func ProgressFraction(score int) float64 {
	level := LevelForScore(score)
	floor := XPFloor(level)
	ceiling := XPCeiling(level)
	frac := float64(score-floor) / float64(ceiling-floor)
	if frac < 0 || math.IsNaN(frac) {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
