package ledger

import "time"

// GridCells is the fixed month grid shape: 6 rows of 7 weekday columns.
// Constant regardless of month length so the surrounding layout never reflows
const GridCells = 42

// Cell is one renderable day of the month grid. Padding positions outside the
// month are nil entries in the grid slice
type Cell struct {
	Date  string `json:"date"`
	Day   int    `json:"day"`
	Count int    `json:"count"`
	Tier  int    `json:"tier"`
}

// Tier buckets a day count into a discrete intensity tier 0..4
func Tier(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 1
	case count <= 3:
		return 2
	case count <= 5:
		return 3
	default:
		return 4
	}
}

// MonthGrid derives the 42-cell grid for the UTC month containing ref.
// Leading cells before the month's first weekday (Sunday = column 0) and
// trailing cells after its last day are nil. Pure: safe to call on every
// render with identical output for identical (ledger, ref) pairs
func (l *Ledger) MonthGrid(ref time.Time) []*Cell {
	first := monthStart(ref)
	offset := int(first.Weekday())
	daysIn := first.AddDate(0, 1, -1).Day()

	grid := make([]*Cell, GridCells)
	for day := 1; day <= daysIn; day++ {
		date := first.AddDate(0, 0, day-1).Format(DateLayout)
		count := l.history[date]
		grid[offset+day-1] = &Cell{
			Date:  date,
			Day:   day,
			Count: count,
			Tier:  Tier(count),
		}
	}
	return grid
}

// MonthTotal sums the recorded counts for the UTC month containing ref
func (l *Ledger) MonthTotal(ref time.Time) int {
	first := monthStart(ref)
	daysIn := first.AddDate(0, 1, -1).Day()
	total := 0
	for day := 1; day <= daysIn; day++ {
		total += l.history[first.AddDate(0, 0, day-1).Format(DateLayout)]
	}
	return total
}

func monthStart(ref time.Time) time.Time {
	u := ref.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}
