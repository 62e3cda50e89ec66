package progress

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

type WeightEntry struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight"`
}

// WeightSummary is what the progress screen renders above the weight
// chart. Latest and Change fall back to "--" when there is not enough
// data to compute them.
type WeightSummary struct {
	Latest  string        `json:"latest"`
	Change  string        `json:"change"`
	Entries []WeightEntry `json:"entries"`
}

func SummarizeWeight(entries []WeightEntry) WeightSummary {
	summary := WeightSummary{
		Latest:  "--",
		Change:  "--",
		Entries: entries,
	}
	if summary.Entries == nil {
		summary.Entries = []WeightEntry{}
	}
	if len(entries) == 0 {
		return summary
	}

	summary.Latest = formatWeight(entries[len(entries)-1].WeightKg)
	if len(entries) < 2 {
		return summary
	}

	change := entries[len(entries)-1].WeightKg - entries[0].WeightKg
	sign := ""
	if change > 0 {
		sign = "+"
	}
	summary.Change = fmt.Sprintf("%s%.1f", sign, change)
	return summary
}

func formatWeight(kg float64) string {
	if kg == math.Trunc(kg) {
		return strconv.FormatFloat(kg, 'f', 0, 64)
	}
	return strconv.FormatFloat(kg, 'f', 1, 64)
}

type PersonalRecord struct {
	ID       string  `json:"id"`
	Exercise string  `json:"exercise"`
	WeightKg float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Date     string  `json:"date"`
}

func (pr PersonalRecord) Validate() error {
	if pr.Exercise == "" {
		return fmt.Errorf("exercise name is required")
	}
	if pr.WeightKg <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if pr.Reps <= 0 {
		return fmt.Errorf("reps must be positive")
	}
	return nil
}

// NewPersonalRecord stamps the record with a creation-time derived ID
// and today's date.
func NewPersonalRecord(exercise string, weightKg float64, reps int, now time.Time) PersonalRecord {
	return PersonalRecord{
		ID:       strconv.FormatInt(now.UnixMilli(), 10),
		Exercise: exercise,
		WeightKg: weightKg,
		Reps:     reps,
		Date:     DateKey(now),
	}
}

// PrependRecord keeps the newest record first.
func PrependRecord(records []PersonalRecord, record PersonalRecord) []PersonalRecord {
	return append([]PersonalRecord{record}, records...)
}

// RemoveRecord drops the record with the given ID. Unknown IDs are a
// no-op.
func RemoveRecord(records []PersonalRecord, id string) []PersonalRecord {
	for i := range records {
		if records[i].ID == id {
			return append(records[:i:i], records[i+1:]...)
		}
	}
	return records
}
