package profile

import (
	"errors"
	"fmt"
)

var ErrProfileNotFound = errors.New("profile not found")

type Goal string

const (
	GoalLoseWeight       Goal = "Lose Weight"
	GoalBuildMuscle      Goal = "Build Muscle"
	GoalImproveEndurance Goal = "Improve Endurance"
	GoalGainStrength     Goal = "Gain Strength"
	GoalFlexibility      Goal = "Flexibility & Mobility"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "Beginner"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceAdvanced     ExperienceLevel = "Advanced"
)

type Equipment string

const (
	EquipmentFullGym       Equipment = "Full Gym"
	EquipmentDumbbellsOnly Equipment = "Dumbbells Only"
	EquipmentBodyweight    Equipment = "Bodyweight Only"
	EquipmentHomeGym       Equipment = "Home Gym (Barbell + Rack)"
)

var (
	validGoals = map[Goal]bool{
		GoalLoseWeight:       true,
		GoalBuildMuscle:      true,
		GoalImproveEndurance: true,
		GoalGainStrength:     true,
		GoalFlexibility:      true,
	}
	validExperienceLevels = map[ExperienceLevel]bool{
		ExperienceBeginner:     true,
		ExperienceIntermediate: true,
		ExperienceAdvanced:     true,
	}
	validEquipment = map[Equipment]bool{
		EquipmentFullGym:       true,
		EquipmentDumbbellsOnly: true,
		EquipmentBodyweight:    true,
		EquipmentHomeGym:       true,
	}
)

// UserProfile holds the onboarding answers. Created once when onboarding
// completes, immutable afterwards except through the full app reset.
type UserProfile struct {
	Name       string          `json:"name"`
	Age        int             `json:"age"`
	WeightKg   float64         `json:"weight"`
	HeightCm   float64         `json:"height"`
	Goal       Goal            `json:"goal"`
	Experience ExperienceLevel `json:"experience"`
	Equipment  Equipment       `json:"equipment"`
	Injuries   string          `json:"injuries,omitempty"`
}

func (p *UserProfile) Validate() error {
	if p.Name == "" {
		return errors.New("name empty")
	}
	if p.Age <= 0 {
		return errors.New("age must be positive")
	}
	if p.WeightKg <= 0 {
		return errors.New("weight must be positive")
	}
	if p.HeightCm <= 0 {
		return errors.New("height must be positive")
	}
	if !validGoals[p.Goal] {
		return fmt.Errorf("unknown goal: %s", p.Goal)
	}
	if !validExperienceLevels[p.Experience] {
		return fmt.Errorf("unknown experience level: %s", p.Experience)
	}
	if !validEquipment[p.Equipment] {
		return fmt.Errorf("unknown equipment: %s", p.Equipment)
	}
	return nil
}
