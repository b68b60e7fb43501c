package progression

import "testing"

func TestCurve_ThresholdConsistency(t *testing.T) {
	for score := 0; score <= 10000; score++ {
		level := LevelForScore(score)
		if XPFloor(level) > score || score >= XPCeiling(level) {
			t.Fatalf("score %d: floor(%d)=%d ceiling=%d out of bounds",
				score, level, XPFloor(level), XPCeiling(level))
		}
	}
}

func TestCurve_ZeroAndNegative(t *testing.T) {
	if got := LevelForScore(0); got != 0 {
		t.Fatalf("level for 0 = %d, want 0", got)
	}
	if got := LevelForScore(-1); got != 0 {
		t.Fatalf("level for -1 = %d, want clamp to 0", got)
	}
	if got := LevelForScore(-100000); got != 0 {
		t.Fatalf("level for -100000 = %d, want clamp to 0", got)
	}
	if got := ProgressFraction(-5); got != 0 {
		t.Fatalf("progress for -5 = %v, want 0", got)
	}
}

func TestCurve_Monotone(t *testing.T) {
	prev := LevelForScore(0)
	for score := 1; score <= 20000; score++ {
		cur := LevelForScore(score)
		if cur < prev {
			t.Fatalf("level decreased at score %d: %d -> %d", score, prev, cur)
		}
		prev = cur
	}
}

func TestCurve_ExactBoundaries(t *testing.T) {
	cases := []struct {
		score int
		level int
	}{
		{0, 0},
		{37, 0}, // floor(sqrt(37/50)) = 0
		{49, 0},
		{50, 1},
		{199, 1},
		{200, 2},
		{449, 2},
		{450, 3},
		{5000, 10},
	}
	for _, tc := range cases {
		if got := LevelForScore(tc.score); got != tc.level {
			t.Fatalf("LevelForScore(%d) = %d, want %d", tc.score, got, tc.level)
		}
	}
}

func TestCurve_Thresholds(t *testing.T) {
	if XPFloor(3) != 450 {
		t.Fatalf("XPFloor(3) = %d, want 450", XPFloor(3))
	}
	if XPCeiling(3) != 800 {
		t.Fatalf("XPCeiling(3) = %d, want 800", XPCeiling(3))
	}
	if XPFloor(-2) != 0 {
		t.Fatalf("XPFloor(-2) = %d, want 0", XPFloor(-2))
	}
	if XPCeiling(-2) != CurveK {
		t.Fatalf("XPCeiling(-2) = %d, want %d", XPCeiling(-2), CurveK)
	}
}

func TestProgressFraction_Bounds(t *testing.T) {
	for score := 0; score <= 3000; score++ {
		f := ProgressFraction(score)
		if f < 0 || f > 1 {
			t.Fatalf("progress out of [0,1] at score %d: %v", score, f)
		}
	}
	// exact midpoint of level 1: floor 50, ceiling 200
	if f := ProgressFraction(125); f != 0.5 {
		t.Fatalf("progress at 125 = %v, want 0.5", f)
	}
	if f := ProgressFraction(50); f != 0 {
		t.Fatalf("progress at floor = %v, want 0", f)
	}
}
