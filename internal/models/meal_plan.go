package models

// Macros holds macronutrient amounts in grams and energy in kcal.
type Macros struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// Add returns the component-wise sum of two macro sets.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fats:     m.Fats + o.Fats,
		Calories: m.Calories + o.Calories,
	}
}

// MealItem is a single food entry of a meal.
type MealItem struct {
	Name   string  `json:"name"`
	Amount string  `json:"amount"`
	Macros *Macros `json:"macros,omitempty"`
}

// Meal is one eating occasion of a plan.
type Meal struct {
	Name         string     `json:"name"`
	Time         string     `json:"time,omitempty"`
	Items        []MealItem `json:"items"`
	TotalMacros  *Macros    `json:"totalMacros,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
}

// MealPlan is the generated plan document stored verbatim in saved plans.
type MealPlan struct {
	Summary      string   `json:"summary"`
	DailyTargets Macros   `json:"dailyTargets"`
	Meals        []Meal   `json:"meals"`
	Tips         []string `json:"tips"`
}

// RecalculateTotals overwrites every meal's totalMacros with the sum of its
// items and returns the plan-wide total. Items without macros count as zero.
func (p *MealPlan) RecalculateTotals() Macros {
	var planTotal Macros
	for i := range p.Meals {
		var mealTotal Macros
		for _, item := range p.Meals[i].Items {
			if item.Macros != nil {
				mealTotal = mealTotal.Add(*item.Macros)
			}
		}
		total := mealTotal
		p.Meals[i].TotalMacros = &total
		planTotal = planTotal.Add(mealTotal)
	}
	return planTotal
}

// ShoppingItem is one line of a shopping list.
type ShoppingItem struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// ShoppingCategory groups shopping items, e.g. "Produce".
type ShoppingCategory struct {
	Name  string         `json:"name"`
	Items []ShoppingItem `json:"items"`
}

// ShoppingList is derived from a meal plan.
type ShoppingList struct {
	Categories []ShoppingCategory `json:"categories"`
}
