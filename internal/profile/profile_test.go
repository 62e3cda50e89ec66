package profile_test

import (
	"testing"

	"github.com/2beens/fitgenius/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() profile.UserProfile {
	return profile.UserProfile{
		Name:       "Alex",
		Age:        30,
		WeightKg:   80,
		HeightCm:   180,
		Goal:       profile.GoalBuildMuscle,
		Experience: profile.ExperienceBeginner,
		Equipment:  profile.EquipmentFullGym,
	}
}

func TestUserProfile_Validate(t *testing.T) {
	p := validProfile()
	require.NoError(t, p.Validate())

	// injuries are optional free text
	p.Injuries = "left knee"
	require.NoError(t, p.Validate())

	testCases := []struct {
		name   string
		mutate func(p *profile.UserProfile)
	}{
		{"empty name", func(p *profile.UserProfile) { p.Name = "" }},
		{"zero age", func(p *profile.UserProfile) { p.Age = 0 }},
		{"negative age", func(p *profile.UserProfile) { p.Age = -5 }},
		{"zero weight", func(p *profile.UserProfile) { p.WeightKg = 0 }},
		{"zero height", func(p *profile.UserProfile) { p.HeightCm = 0 }},
		{"unknown goal", func(p *profile.UserProfile) { p.Goal = "Get Swole" }},
		{"unknown experience", func(p *profile.UserProfile) { p.Experience = "Expert" }},
		{"unknown equipment", func(p *profile.UserProfile) { p.Equipment = "Kettlebells" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestGoalValues(t *testing.T) {
	// stored profile values, must stay stable
	assert.Equal(t, "Lose Weight", string(profile.GoalLoseWeight))
	assert.Equal(t, "Build Muscle", string(profile.GoalBuildMuscle))
	assert.Equal(t, "Improve Endurance", string(profile.GoalImproveEndurance))
	assert.Equal(t, "Gain Strength", string(profile.GoalGainStrength))
	assert.Equal(t, "Flexibility & Mobility", string(profile.GoalFlexibility))
}
