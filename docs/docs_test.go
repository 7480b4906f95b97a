package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var spec struct {
		Swagger     string                     `json:"swagger"`
		Host        string                     `json:"host"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	assert.Equal(t, "2.0", spec.Swagger)
	assert.Equal(t, SwaggerInfo.Host, spec.Host)
	for _, p := range []string{
		"/api/users", "/api/auth", "/api/plans", "/api/schedules", "/api/schedules/{id}",
		"/api/ai", "/api/usage", "/api/usage/check", "/healthz",
	} {
		assert.Contains(t, spec.Paths, p)
	}
	assert.Contains(t, spec.Definitions, "models.MealPlan")
}
