package gemini

import (
	"encoding/json"
	"fmt"

	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/profile"
)

func workoutPlanPrompt(p *profile.UserProfile) string {
	injuries := p.Injuries
	if injuries == "" {
		injuries = "None"
	}
	return fmt.Sprintf(`Create a detailed 7-day workout routine for a %d year old, %.0fcm, %.0fkg person.
Goal: %s.
Experience Level: %s.
Available Equipment: %s.
Injuries/Constraints: %s.

Return a valid JSON object with this exact shape:
{
  "summary": "a brief motivational overview of the plan",
  "schedule": [
    {
      "day": "day label",
      "focus": "main focus",
      "durationMinutes": 60,
      "exercises": [
        {
          "name": "exercise name",
          "sets": 3,
          "reps": "rep range, e.g. '8-12' or 'Failure'",
          "notes": "form cue or tempo instruction",
          "description": "short step-by-step guide on how to perform the exercise"
        }
      ]
    }
  ]
}
The schedule must contain exactly 7 days. Rest days have durationMinutes 0 and an empty exercises array.`,
		p.Age, p.HeightCm, p.WeightKg, p.Goal, p.Experience, p.Equipment, injuries,
	)
}

func nutritionPlanPrompt(p *profile.UserProfile) string {
	return fmt.Sprintf(`Create a daily nutrition guide for a %d year old, %.0fkg person with the goal of %s.
Calculate appropriate caloric and macro targets.
Provide a sample day of eating.

Return a valid JSON object with this exact shape:
{
  "dailyTargets": {"calories": 0, "protein": 0, "carbs": 0, "fats": 0},
  "advice": "general nutritional advice and hydration tips",
  "sampleDay": {
    "breakfast": {"name": "", "ingredients": [""], "calories": 0, "protein": 0},
    "lunch": {"name": "", "ingredients": [""], "calories": 0, "protein": 0},
    "dinner": {"name": "", "ingredients": [""], "calories": 0, "protein": 0},
    "snack": {"name": "", "ingredients": [""], "calories": 0, "protein": 0}
  }
}
All four dailyTargets fields and all four meal slots must be populated.`,
		p.Age, p.WeightKg, p.Goal,
	)
}

func coachSystemInstruction(
	p *profile.UserProfile,
	workoutPlan *plans.WorkoutPlan,
	nutritionPlan *plans.NutritionPlan,
) string {
	profileJson, err := json.Marshal(p)
	if err != nil {
		profileJson = []byte("{}")
	}

	workoutContext := "Workout Plan: Currently being generated, tell the user to wait a moment if they ask for details."
	if workoutPlan != nil {
		workoutContext = fmt.Sprintf("Current Workout Plan: %q", workoutPlan.Summary)
	}

	nutritionContext := "Nutrition Plan: Currently being generated."
	if nutritionPlan != nil {
		targetsJson, err := json.Marshal(nutritionPlan.DailyTargets)
		if err == nil {
			nutritionContext = fmt.Sprintf("Nutrition Targets: %s", targetsJson)
		}
	}

	return fmt.Sprintf(`You are an expert fitness coach named "Titan".
User Profile: %s.
%s
%s
Keep answers concise, motivating, and science-based.
Use markdown for formatting.`,
		profileJson, workoutContext, nutritionContext,
	)
}
