package progress

import (
	"fmt"
	"math"

	"github.com/2beens/fitgenius/internal/plans"
)

// Ledger records completion state for the current workout plan. Keys
// are positional - "d{day}-e{exercise}" for exercises and "d{day}-rest"
// for rest days - so a regenerated plan inherits whatever flags were
// already set for the same positions.
type Ledger map[string]bool

func ExerciseKey(dayIndex, exerciseIndex int) string {
	return fmt.Sprintf("d%d-e%d", dayIndex, exerciseIndex)
}

func RestKey(dayIndex int) string {
	return fmt.Sprintf("d%d-rest", dayIndex)
}

func (l Ledger) IsExerciseComplete(dayIndex, exerciseIndex int) bool {
	return l[ExerciseKey(dayIndex, exerciseIndex)]
}

func (l Ledger) IsRestDayComplete(dayIndex int) bool {
	return l[RestKey(dayIndex)]
}

func (l Ledger) ToggleExercise(dayIndex, exerciseIndex int) {
	key := ExerciseKey(dayIndex, exerciseIndex)
	l[key] = !l[key]
}

func (l Ledger) ToggleRestDay(dayIndex int) {
	key := RestKey(dayIndex)
	l[key] = !l[key]
}

// IsDayComplete: a day with no exercises is complete iff its rest flag
// is set; a day with exercises is complete iff every flag is set.
func (l Ledger) IsDayComplete(dayIndex int, day *plans.WorkoutDay) bool {
	if day.IsRestDay() {
		return l.IsRestDayComplete(dayIndex)
	}
	for i := range day.Exercises {
		if !l.IsExerciseComplete(dayIndex, i) {
			return false
		}
	}
	return true
}

// ToggleDayComplete bulk-completes the day when not all exercises are
// done, bulk-clears it when they all are. A partially done day is
// first pushed to all-complete, so individual flags are not restored.
func (l Ledger) ToggleDayComplete(dayIndex int, day *plans.WorkoutDay) {
	if day.IsRestDay() {
		l.ToggleRestDay(dayIndex)
		return
	}

	allComplete := l.IsDayComplete(dayIndex, day)
	for i := range day.Exercises {
		l[ExerciseKey(dayIndex, i)] = !allComplete
	}
}

// PercentComplete returns 0-100 for the given day.
func (l Ledger) PercentComplete(dayIndex int, day *plans.WorkoutDay) int {
	if day.IsRestDay() {
		if l.IsRestDayComplete(dayIndex) {
			return 100
		}
		return 0
	}

	completed := 0
	for i := range day.Exercises {
		if l.IsExerciseComplete(dayIndex, i) {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(day.Exercises))))
}
