package models

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planFrom builds a plan whose meal i holds one item per entry of grams[i].
// A negative entry is an item without macros.
func planFrom(grams [][]int) MealPlan {
	var p MealPlan
	for _, meal := range grams {
		m := Meal{Name: "meal"}
		for _, g := range meal {
			item := MealItem{Name: "item", Amount: "1"}
			if g >= 0 {
				item.Macros = &Macros{
					Protein:  float64(g),
					Carbs:    float64(2 * g),
					Fats:     float64(g / 2),
					Calories: float64(9 * g),
				}
			}
			m.Items = append(m.Items, item)
		}
		p.Meals = append(p.Meals, m)
	}
	return p
}

func sumItems(items []MealItem) Macros {
	var total Macros
	for _, it := range items {
		if it.Macros != nil {
			total.Protein += it.Macros.Protein
			total.Carbs += it.Macros.Carbs
			total.Fats += it.Macros.Fats
			total.Calories += it.Macros.Calories
		}
	}
	return total
}

func TestRecalculateTotals_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	mealsGen := gen.SliceOf(gen.SliceOf(gen.IntRange(-1, 500)))

	properties.Property("meal total is the sum of its items", prop.ForAll(
		func(grams [][]int) bool {
			p := planFrom(grams)
			p.RecalculateTotals()
			for _, m := range p.Meals {
				if m.TotalMacros == nil || *m.TotalMacros != sumItems(m.Items) {
					return false
				}
			}
			return true
		},
		mealsGen,
	))

	properties.Property("plan total is the sum of meal totals", prop.ForAll(
		func(grams [][]int) bool {
			p := planFrom(grams)
			total := p.RecalculateTotals()

			var want Macros
			for _, m := range p.Meals {
				want = want.Add(*m.TotalMacros)
			}
			return total == want
		},
		mealsGen,
	))

	properties.Property("recalculation is idempotent", prop.ForAll(
		func(grams [][]int) bool {
			p := planFrom(grams)
			first := p.RecalculateTotals()
			second := p.RecalculateTotals()
			return first == second
		},
		mealsGen,
	))

	properties.TestingRun(t)
}

func TestRecalculateTotals_OverwritesModelTotals(t *testing.T) {
	p := MealPlan{
		Meals: []Meal{
			{
				Name: "Breakfast",
				Items: []MealItem{
					{Name: "Oats", Amount: "80 g", Macros: &Macros{Protein: 10, Carbs: 54, Fats: 5, Calories: 300}},
					{Name: "Water", Amount: "250 ml"},
				},
				TotalMacros: &Macros{Protein: 999},
			},
			{Name: "Fast"},
		},
	}

	total := p.RecalculateTotals()

	assert.Equal(t, Macros{Protein: 10, Carbs: 54, Fats: 5, Calories: 300}, total)
	require.NotNil(t, p.Meals[0].TotalMacros)
	assert.Equal(t, Macros{Protein: 10, Carbs: 54, Fats: 5, Calories: 300}, *p.Meals[0].TotalMacros)
	require.NotNil(t, p.Meals[1].TotalMacros)
	assert.Equal(t, Macros{}, *p.Meals[1].TotalMacros)
}

func TestIsWeekday(t *testing.T) {
	for _, d := range Weekdays {
		assert.True(t, IsWeekday(d))
	}
	assert.False(t, IsWeekday("Monday"))
	assert.False(t, IsWeekday("funday"))
}
