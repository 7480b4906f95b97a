package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

const planSystemPrompt = `You are a nutrition planner. Reply with a single JSON object and nothing else.
The object must have the shape:
{"summary": string,
 "dailyTargets": {"protein": number, "carbs": number, "fats": number, "calories": number},
 "meals": [{"name": string, "time": string, "items": [{"name": string, "amount": string,
   "macros": {"protein": number, "carbs": number, "fats": number, "calories": number}}],
   "instructions": string}],
 "tips": [string]}
Macros are grams, calories are kcal.`

const mealSystemPrompt = `You are a nutrition planner. Reply with a single JSON object describing one meal and nothing else:
{"name": string, "time": string, "items": [{"name": string, "amount": string,
  "macros": {"protein": number, "carbs": number, "fats": number, "calories": number}}],
 "instructions": string}`

const shoppingSystemPrompt = `You build grocery lists. Reply with a single JSON object and nothing else:
{"categories": [{"name": string, "items": [{"name": string, "amount": string}]}]}
Merge duplicate ingredients and sum their amounts.`

const defaultMealsPerDay = 3

func generatePrompt(q models.Questionnaire) string {
	meals := q.MealsPerDay
	if meals <= 0 {
		meals = defaultMealsPerDay
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a one-day meal plan with %d meals.\n", meals)
	fmt.Fprintf(&b, "Goal: %s\n", q.Goal)
	if q.Sex != "" {
		fmt.Fprintf(&b, "Sex: %s\n", q.Sex)
	}
	if q.Age > 0 {
		fmt.Fprintf(&b, "Age: %d\n", q.Age)
	}
	if q.HeightCm > 0 {
		fmt.Fprintf(&b, "Height: %.0f cm\n", q.HeightCm)
	}
	if q.WeightKg > 0 {
		fmt.Fprintf(&b, "Weight: %.1f kg\n", q.WeightKg)
	}
	if q.ActivityLevel != "" {
		fmt.Fprintf(&b, "Activity level: %s\n", q.ActivityLevel)
	}
	if q.DietType != "" {
		fmt.Fprintf(&b, "Diet: %s\n", q.DietType)
	}
	if len(q.Allergies) > 0 {
		fmt.Fprintf(&b, "Never include: %s\n", strings.Join(q.Allergies, ", "))
	}
	if len(q.Dislikes) > 0 {
		fmt.Fprintf(&b, "Avoid: %s\n", strings.Join(q.Dislikes, ", "))
	}
	if len(q.Cuisines) > 0 {
		fmt.Fprintf(&b, "Preferred cuisines: %s\n", strings.Join(q.Cuisines, ", "))
	}
	if q.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", q.Notes)
	}
	return b.String()
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func updatePrompt(plan models.MealPlan, instructions string) string {
	return fmt.Sprintf("Current plan:\n%s\n\nRevise the whole plan following these instructions:\n%s", mustJSON(plan), instructions)
}

func mealUpdatePrompt(plan models.MealPlan, index int, instructions string) string {
	return fmt.Sprintf("Plan targets: %s\nMeal to replace:\n%s\n\nReplace this meal following these instructions:\n%s",
		mustJSON(plan.DailyTargets), mustJSON(plan.Meals[index]), instructions)
}

func shoppingListPrompt(plan models.MealPlan) string {
	return fmt.Sprintf("Build a shopping list for this plan:\n%s", mustJSON(plan.Meals))
}
