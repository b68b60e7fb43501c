package progression

import "math"

// Score weights, process-wide constants
const (
	WeightCommit     = 0.1
	WeightRepository = 5.0
	WeightPopularity = 0.2
)

// Counters are the raw activity counters that feed the score
type Counters struct {
	Commits      int
	Repositories int
	Popularity   int
}

// Breakdown is the per-source score contribution, rounded for display
type Breakdown struct {
	Commits      int `json:"commits"`
	Repositories int `json:"repositories"`
	Popularity   int `json:"popularity"`
	Completed    int `json:"completed"`
}

// Aggregate combines weighted counters and completed-item difficulty bonuses
// into the single scalar score, flooring the weighted sum.
// Non-finite intermediate values clamp to zero so the curve never sees them
func Aggregate(c Counters, completed []Difficulty) int {
	sum := float64(c.Commits)*WeightCommit +
		float64(c.Repositories)*WeightRepository +
		float64(c.Popularity)*WeightPopularity
	for _, d := range completed {
		sum += d.Weight()
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) || sum < 0 {
		return 0
	}
	return int(math.Floor(sum))
}

// BreakdownFor reports each source's rounded contribution, mirroring the
// aggregate weights
func BreakdownFor(c Counters, completed []Difficulty) Breakdown {
	var items float64
	for _, d := range completed {
		items += d.Weight()
	}
	return Breakdown{
		Commits:      int(math.Round(float64(c.Commits) * WeightCommit)),
		Repositories: c.Repositories * int(WeightRepository),
		Popularity:   int(math.Round(float64(c.Popularity) * WeightPopularity)),
		Completed:    int(math.Round(items)),
	}
}
