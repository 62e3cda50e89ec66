package plans

import (
	"errors"
	"fmt"
)

type Type string

const (
	TypeWorkout   Type = "workout"
	TypeNutrition Type = "nutrition"
)

func ParseType(t string) (Type, error) {
	switch t {
	case string(TypeWorkout):
		return TypeWorkout, nil
	case string(TypeNutrition):
		return TypeNutrition, nil
	default:
		return "", fmt.Errorf("unknown plan type: %s", t)
	}
}

// Status is the lifecycle of one plan generation:
// idle -> loading -> success | error, and error -> loading on retry.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const ScheduleDays = 7

type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	Notes       string `json:"notes"`
	Description string `json:"description,omitempty"`
}

// WorkoutDay with no exercises and zero duration is a rest day.
type WorkoutDay struct {
	Day             string     `json:"day"`
	Focus           string     `json:"focus"`
	DurationMinutes int        `json:"durationMinutes"`
	Exercises       []Exercise `json:"exercises"`
}

func (d *WorkoutDay) IsRestDay() bool {
	return len(d.Exercises) == 0
}

// WorkoutPlan is produced wholesale by the AI gateway and only ever
// replaced on regeneration, never partially mutated.
type WorkoutPlan struct {
	Summary  string       `json:"summary"`
	Schedule []WorkoutDay `json:"schedule"`
}

func (p *WorkoutPlan) Validate() error {
	if len(p.Schedule) != ScheduleDays {
		return fmt.Errorf("schedule must have exactly %d days, got %d", ScheduleDays, len(p.Schedule))
	}
	for i, day := range p.Schedule {
		if day.Day == "" {
			return fmt.Errorf("day %d: empty day label", i)
		}
		for j, ex := range day.Exercises {
			if ex.Name == "" {
				return fmt.Errorf("day %d, exercise %d: empty name", i, j)
			}
			if ex.Sets <= 0 {
				return fmt.Errorf("day %d, exercise %d: sets must be positive", i, j)
			}
		}
	}
	return nil
}

type MacroSplit struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

type Meal struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
}

const (
	MealSlotBreakfast = "breakfast"
	MealSlotLunch     = "lunch"
	MealSlotDinner    = "dinner"
	MealSlotSnack     = "snack"
)

// MealSlots in their fixed serving order.
func MealSlots() []string {
	return []string{MealSlotBreakfast, MealSlotLunch, MealSlotDinner, MealSlotSnack}
}

type SampleDay struct {
	Breakfast Meal `json:"breakfast"`
	Lunch     Meal `json:"lunch"`
	Dinner    Meal `json:"dinner"`
	Snack     Meal `json:"snack"`
}

func (sd *SampleDay) Meal(slot string) (Meal, bool) {
	switch slot {
	case MealSlotBreakfast:
		return sd.Breakfast, true
	case MealSlotLunch:
		return sd.Lunch, true
	case MealSlotDinner:
		return sd.Dinner, true
	case MealSlotSnack:
		return sd.Snack, true
	default:
		return Meal{}, false
	}
}

type NutritionPlan struct {
	DailyTargets MacroSplit `json:"dailyTargets"`
	Advice       string     `json:"advice"`
	SampleDay    SampleDay  `json:"sampleDay"`
}

func (p *NutritionPlan) Validate() error {
	t := p.DailyTargets
	if t.Calories <= 0 || t.Protein <= 0 || t.Carbs <= 0 || t.Fats <= 0 {
		return errors.New("all daily target fields must be populated")
	}
	for _, slot := range MealSlots() {
		meal, _ := p.SampleDay.Meal(slot)
		if meal.Name == "" {
			return fmt.Errorf("meal slot %s not populated", slot)
		}
	}
	return nil
}
