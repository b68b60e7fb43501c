package progression

import "testing"

func TestAggregate_BaselineScenario(t *testing.T) {
	// 100*0.1 + 5*5 + 10*0.2 = 10 + 25 + 2 = 37
	c := Counters{Commits: 100, Repositories: 5, Popularity: 10}
	score := Aggregate(c, nil)
	if score != 37 {
		t.Fatalf("aggregate = %d, want 37", score)
	}
	if level := LevelForScore(score); level != 0 {
		t.Fatalf("level for 37 = %d, want 0", level)
	}
}

func TestAggregate_FloorsFractional(t *testing.T) {
	// 7*0.1 = 0.7 -> floors to 0
	if got := Aggregate(Counters{Commits: 7}, nil); got != 0 {
		t.Fatalf("aggregate = %d, want 0", got)
	}
	// 15*0.1 + 0.06 = 1.56 -> 1
	if got := Aggregate(Counters{Commits: 15}, []Difficulty{DifficultyHard}); got != 1 {
		t.Fatalf("aggregate = %d, want 1", got)
	}
}

func TestAggregate_CompletedItems(t *testing.T) {
	items := []Difficulty{
		DifficultyTrivial,
		DifficultyModerate,
		DifficultyHard,
		DifficultyExtreme,
	}
	// 0.01 + 0.03 + 0.06 + 0.1 = 0.2 on its own floors to 0
	if got := Aggregate(Counters{}, items); got != 0 {
		t.Fatalf("aggregate = %d, want 0", got)
	}
	// 10 commits puts the fraction over 1: 1.0 + 0.2 -> 1
	if got := Aggregate(Counters{Commits: 10}, items); got != 1 {
		t.Fatalf("aggregate = %d, want 1", got)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	c := Counters{Commits: 321, Repositories: 12, Popularity: 44}
	items := []Difficulty{DifficultyExtreme, DifficultyHard}
	first := Aggregate(c, items)
	for i := 0; i < 10; i++ {
		if got := Aggregate(c, items); got != first {
			t.Fatalf("aggregate not deterministic: %d vs %d", got, first)
		}
	}
}

func TestAggregate_NegativeClamps(t *testing.T) {
	if got := Aggregate(Counters{Commits: -1000}, nil); got != 0 {
		t.Fatalf("aggregate = %d, want clamp to 0", got)
	}
}

func TestDifficulty_WeightsMonotone(t *testing.T) {
	tiers := []Difficulty{DifficultyTrivial, DifficultyModerate, DifficultyHard, DifficultyExtreme}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Weight() <= tiers[i-1].Weight() {
			t.Fatalf("weights not increasing at %s", tiers[i])
		}
	}
}

func TestDifficulty_DisplayXP(t *testing.T) {
	cases := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyTrivial, 10},
		{DifficultyModerate, 30},
		{DifficultyHard, 60},
		{DifficultyExtreme, 100},
	}
	for _, tc := range cases {
		if got := tc.d.DisplayXP(); got != tc.want {
			t.Fatalf("DisplayXP(%s) = %d, want %d", tc.d, got, tc.want)
		}
	}
}

func TestDifficulty_ParseRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{DifficultyTrivial, DifficultyModerate, DifficultyHard, DifficultyExtreme} {
		got, ok := ParseDifficulty(d.String())
		if !ok || got != d {
			t.Fatalf("parse %q = (%v, %v)", d.String(), got, ok)
		}
	}
	if _, ok := ParseDifficulty("legendary"); ok {
		t.Fatalf("expected unknown difficulty to report false")
	}
}

func TestBreakdownFor(t *testing.T) {
	c := Counters{Commits: 100, Repositories: 5, Popularity: 10}
	b := BreakdownFor(c, []Difficulty{DifficultyExtreme})
	if b.Commits != 10 || b.Repositories != 25 || b.Popularity != 2 || b.Completed != 0 {
		t.Fatalf("unexpected breakdown %+v", b)
	}
}
