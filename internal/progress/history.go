package progress

import (
	"sort"
	"time"
)

// Snapshot is one day's aggregated intake totals. It is the only
// record that is derived and then persisted, instead of being mutated
// directly by a user action.
type Snapshot struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Water    int    `json:"water"`
}

type History []Snapshot

// Upsert overwrites the entry with a matching date in place, or
// appends when the date is not present yet. One entry per day, always.
func (h History) Upsert(snap Snapshot) History {
	for i := range h {
		if h[i].Date == snap.Date {
			h[i] = snap
			return h
		}
	}
	return append(h, snap)
}

// Streak counts consecutive days with a snapshot, walking backwards
// from today. The run only counts if the most recent snapshot is from
// today or yesterday; duplicates of one day collapse into it.
func (h History) Streak(today time.Time) int {
	if len(h) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(h))
	for _, snap := range h {
		t, err := time.Parse(dateLayout, snap.Date)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	// reduce today to its calendar day the same way stored dates are
	// written, truncating on the UTC grid shifts it in other zones
	todayDay, err := time.Parse(dateLayout, DateKey(today))
	if err != nil {
		return 0
	}
	if daysBetween(days[0], todayDay) > 1 {
		return 0
	}

	streak := 1
	current := days[0]
	for _, day := range days[1:] {
		gap := daysBetween(day, current)
		switch gap {
		case 0:
			// duplicate date, collapse
		case 1:
			streak++
			current = day
		default:
			return streak
		}
	}
	return streak
}

func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
