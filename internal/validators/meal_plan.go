package validators

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kaptinlin/jsonschema"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

// ErrInvalidDocument is returned when a model response does not match the expected shape.
var ErrInvalidDocument = errors.New("invalid document")

//go:embed schemas/*.json
var schemasFS embed.FS

// MealPlanValidator checks model output against the meal plan, meal and
// shopping list schemas before it reaches the client.
type MealPlanValidator struct {
	plan     *jsonschema.Schema
	meal     *jsonschema.Schema
	shopping *jsonschema.Schema
}

// NewMealPlanValidator compiles the embedded schemas.
func NewMealPlanValidator() (*MealPlanValidator, error) {
	compile := func(name string) (*jsonschema.Schema, error) {
		data, err := schemasFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
		}
		schema, err := jsonschema.NewCompiler().Compile(data)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		return schema, nil
	}

	plan, err := compile("meal_plan.json")
	if err != nil {
		return nil, err
	}
	meal, err := compile("meal.json")
	if err != nil {
		return nil, err
	}
	shopping, err := compile("shopping_list.json")
	if err != nil {
		return nil, err
	}

	return &MealPlanValidator{plan: plan, meal: meal, shopping: shopping}, nil
}

// ValidateMealPlan validates raw JSON and decodes it into a plan.
func (v *MealPlanValidator) ValidateMealPlan(raw []byte) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := validate(v.plan, raw, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ValidateMeal validates a single replacement meal.
func (v *MealPlanValidator) ValidateMeal(raw []byte) (*models.Meal, error) {
	var meal models.Meal
	if err := validate(v.meal, raw, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (v *MealPlanValidator) ValidateShoppingList(raw []byte) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := validate(v.shopping, raw, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func validate(schema *jsonschema.Schema, raw []byte, dst any) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	result := schema.Validate(doc)
	if !result.IsValid() {
		var messages []string
		for field, evalErr := range result.Errors {
			messages = append(messages, fmt.Sprintf("%s: %s", field, evalErr.Error()))
		}
		sort.Strings(messages)
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(messages, "; "))
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}
