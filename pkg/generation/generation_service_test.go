package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulluiz/api-recipe-generator/domain"
)

type fakeClient struct {
	responses []string
	errs      []error
	prompts   []string
	calls     int
}

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)

	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

const validRecipeJSON = `{
  "name": "Tomato Omelette",
  "ingredients": [
    {"name": "Eggs", "quantity": "3 units"},
    {"name": "Tomato", "quantity": "1 unit"}
  ],
  "steps": [
    {"number": 1, "description": "Beat the eggs."},
    {"number": 2, "description": "Dice the tomato and fold it in."}
  ]
}`

func TestGenerateRecipe_ParsesBareJSON(t *testing.T) {
	client := &fakeClient{responses: []string{validRecipeJSON}}
	service := NewGenerationService(client)

	recipe, err := service.GenerateRecipe(context.Background(), []domain.GenerationIngredient{
		{Name: "Eggs", Quantity: "3 units"},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Tomato Omelette", recipe.Name)
	assert.Len(t, recipe.Ingredients, 2)
	assert.Len(t, recipe.Steps, 2)
	assert.Equal(t, 1, recipe.Steps[0].Number)
}

func TestGenerateRecipe_StripsMarkdownFence(t *testing.T) {
	fenced := "```json\n" + validRecipeJSON + "\n```"
	client := &fakeClient{responses: []string{fenced}}
	service := NewGenerationService(client)

	recipe, err := service.GenerateRecipe(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Tomato Omelette", recipe.Name)
}

func TestGenerateRecipe_InvalidJSONReturnsParseError(t *testing.T) {
	client := &fakeClient{responses: []string{"Sure! Here is your recipe: pancakes"}}
	service := NewGenerationService(client)

	_, err := service.GenerateRecipe(context.Background(), nil, nil)

	require.Error(t, err)
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Sure! Here is your recipe: pancakes", parseErr.Raw)
}

func TestGenerateRecipe_ClientErrorPropagates(t *testing.T) {
	client := &fakeClient{errs: []error{domain.ErrGenerationFailed}}
	service := NewGenerationService(client)

	_, err := service.GenerateRecipe(context.Background(), nil, nil)

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGenerateRecipe_PromptCarriesExclusions(t *testing.T) {
	client := &fakeClient{responses: []string{validRecipeJSON}}
	service := NewGenerationService(client)

	_, err := service.GenerateRecipe(context.Background(), []domain.GenerationIngredient{
		{Name: "Rice", Quantity: "200 g"},
	}, []string{"Fried Rice", "Rice Pudding"})

	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "- Rice: 200 g")
	assert.Contains(t, client.prompts[0], "Fried Rice, Rice Pudding")
}

func TestGenerateMany_SkipsFailedAttempts(t *testing.T) {
	recipeNamed := func(name string) string {
		return strings.Replace(validRecipeJSON, "Tomato Omelette", name, 1)
	}
	client := &fakeClient{
		responses: []string{recipeNamed("First"), "", recipeNamed("Third"), "", recipeNamed("Fifth")},
		errs:      []error{nil, errors.New("boom"), nil, errors.New("boom"), nil},
	}
	service := NewGenerationService(client)

	recipes, failures := service.GenerateMany(context.Background(), nil, 5)

	require.Len(t, recipes, 3)
	assert.Equal(t, "First", recipes[0].Name)
	assert.Equal(t, "Third", recipes[1].Name)
	assert.Equal(t, "Fifth", recipes[2].Name)
	assert.Len(t, failures, 2)
}

func TestGenerateMany_ExclusionListGrowsWithSuccesses(t *testing.T) {
	recipeNamed := func(name string) string {
		return strings.Replace(validRecipeJSON, "Tomato Omelette", name, 1)
	}
	client := &fakeClient{
		responses: []string{recipeNamed("Alpha"), recipeNamed("Beta"), recipeNamed("Gamma")},
	}
	service := NewGenerationService(client)

	recipes, failures := service.GenerateMany(context.Background(), nil, 3)

	require.Len(t, recipes, 3)
	assert.Empty(t, failures)
	require.Len(t, client.prompts, 3)
	assert.NotContains(t, client.prompts[0], "Do NOT repeat")
	assert.Contains(t, client.prompts[1], "Alpha")
	assert.Contains(t, client.prompts[2], "Alpha, Beta")
}

func TestGenerateMany_AllAttemptsFail(t *testing.T) {
	client := &fakeClient{
		errs: []error{errors.New("boom"), errors.New("boom"), errors.New("boom")},
	}
	service := NewGenerationService(client)

	recipes, failures := service.GenerateMany(context.Background(), nil, 3)

	assert.Empty(t, recipes)
	assert.Len(t, failures, 3)
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripFences(tc.in))
		})
	}
}
