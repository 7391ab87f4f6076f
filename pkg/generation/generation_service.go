package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/saulluiz/api-recipe-generator/domain"
)

type (
	GenerationService interface {
		GenerateRecipe(ctx context.Context, ingredients []domain.GenerationIngredient, exclude []string) (domain.GeneratedRecipe, error)
		GenerateMany(ctx context.Context, ingredients []domain.GenerationIngredient, count int) ([]domain.GeneratedRecipe, []error)
	}

	generationService struct {
		client Client
	}
)

func NewGenerationService(client Client) GenerationService {
	return &generationService{client: client}
}

func (s *generationService) GenerateRecipe(ctx context.Context, ingredients []domain.GenerationIngredient, exclude []string) (domain.GeneratedRecipe, error) {
	raw, err := s.client.Complete(ctx, buildPrompt(ingredients, exclude))
	if err != nil {
		return domain.GeneratedRecipe{}, err
	}

	payload := stripFences(raw)

	var recipe domain.GeneratedRecipe
	if err := json.Unmarshal([]byte(payload), &recipe); err != nil {
		return domain.GeneratedRecipe{}, &domain.ParseError{Raw: raw, Err: err}
	}

	return recipe, nil
}

// GenerateMany produces up to count recipes sequentially, feeding every
// success's name into the next attempt's exclusion list. Attempts that fail
// are collected and skipped, the batch itself never fails.
func (s *generationService) GenerateMany(ctx context.Context, ingredients []domain.GenerationIngredient, count int) ([]domain.GeneratedRecipe, []error) {
	recipes := make([]domain.GeneratedRecipe, 0, count)
	exclude := make([]string, 0, count)
	var failures []error

	for i := 0; i < count; i++ {
		recipe, err := s.GenerateRecipe(ctx, ingredients, exclude)
		if err != nil {
			log.Printf("generation attempt %d/%d failed: %v", i+1, count, err)
			failures = append(failures, err)
			continue
		}

		recipes = append(recipes, recipe)
		exclude = append(exclude, recipe.Name)
	}

	return recipes, failures
}

func buildPrompt(ingredients []domain.GenerationIngredient, exclude []string) string {
	var b strings.Builder

	b.WriteString("You are a chef who creates delicious recipes.\n\n")
	b.WriteString("Using the following available ingredients, create ONE complete recipe:\n\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- %s: %s\n", ing.Name, ing.Quantity)
	}

	b.WriteString("\nIMPORTANT: Return ONLY a valid JSON object with no additional text, following exactly this format:\n\n")
	b.WriteString(`{
  "name": "Recipe name",
  "ingredients": [
    {"name": "Ingredient name", "quantity": "amount with unit"}
  ],
  "steps": [
    {"number": 1, "description": "Detailed description of the first step"},
    {"number": 2, "description": "Detailed description of the second step"}
  ]
}`)

	b.WriteString("\n\nRules:\n")
	b.WriteString("1. Use ALL the ingredients provided\n")
	b.WriteString("2. You may add basic pantry staples (salt, pepper, oil, water) if needed\n")
	b.WriteString("3. Write between 5 and 8 clear, detailed steps\n")
	b.WriteString("4. The recipe must be realistic and easy to follow\n")
	b.WriteString("5. Return ONLY the JSON, no markdown, no explanations, no code blocks\n")

	if len(exclude) > 0 {
		fmt.Fprintf(&b, "6. Do NOT repeat any of these recipes: %s\n", strings.Join(exclude, ", "))
	}

	return b.String()
}

// stripFences removes a markdown code fence wrapping the payload, models
// add one despite being told not to.
func stripFences(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}
