package models

// Questionnaire holds the answers collected by the planning wizard.
type Questionnaire struct {
	Goal          string   `json:"goal"` // lose_weight, maintain, gain_muscle ...
	Sex           string   `json:"sex,omitempty"`
	Age           int      `json:"age,omitempty"`
	HeightCm      float64  `json:"heightCm,omitempty"`
	WeightKg      float64  `json:"weightKg,omitempty"`
	ActivityLevel string   `json:"activityLevel,omitempty"`
	DietType      string   `json:"dietType,omitempty"`
	Allergies     []string `json:"allergies,omitempty"`
	Dislikes      []string `json:"dislikes,omitempty"`
	Cuisines      []string `json:"cuisines,omitempty"`
	MealsPerDay   int      `json:"mealsPerDay,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}
