package progress

import "time"

// stored dates are canonical ISO days; display labels like "Oct 27"
// are derived, never stored
const dateLayout = "2006-01-02"

func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// DateLabel is the short display form of a stored date.
func DateLabel(dateKey string) string {
	t, err := time.Parse(dateLayout, dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format("Jan 2")
}

// MealLog is scoped to a single calendar day: a stored log with a stale
// date is simply ignored on read, which makes the daily reset implicit.
type MealLog struct {
	Date  string          `json:"date"`
	Eaten map[string]bool `json:"eaten"`
}

func NewMealLog(date string) MealLog {
	return MealLog{
		Date:  date,
		Eaten: make(map[string]bool),
	}
}

// ForDay returns the log itself when it belongs to the given day,
// otherwise a fresh empty log for that day.
func (m MealLog) ForDay(date string) MealLog {
	if m.Date == date && m.Eaten != nil {
		return m
	}
	return NewMealLog(date)
}

// Hydration holds one day's water intake in milliliters, never negative.
type Hydration struct {
	Date string `json:"date"`
	Ml   int    `json:"amount"`
}

func (h Hydration) ForDay(date string) Hydration {
	if h.Date == date {
		return h
	}
	return Hydration{Date: date}
}

// Adjust applies the delta, flooring the amount at zero.
func (h Hydration) Adjust(deltaMl int) Hydration {
	h.Ml += deltaMl
	if h.Ml < 0 {
		h.Ml = 0
	}
	return h
}
