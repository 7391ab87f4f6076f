package domain

import (
	"errors"
	"fmt"
)

var (
	ErrGenerationNotConfigured = errors.New("generation service not configured")
	ErrGenerationFailed        = errors.New("generation request failed")
)

// ParseError reports a generation response whose payload was not valid
// structured data. It carries the raw text for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse generation response: %v - raw response: %s", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type (
	GenerationIngredient struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
	}

	GenerateRecipeRequest struct {
		Ingredients []GenerationIngredient `json:"ingredients" validate:"required,min=1,dive"`
		Count       int                    `json:"count" validate:"omitempty,min=1,max=10"`
	}

	GeneratedIngredient struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
	}

	GeneratedStep struct {
		Number      int    `json:"number"`
		Description string `json:"description"`
	}

	GeneratedRecipe struct {
		Name        string                `json:"name"`
		Ingredients []GeneratedIngredient `json:"ingredients"`
		Steps       []GeneratedStep       `json:"steps"`
	}

	GenerateRecipeResponse struct {
		Recipes []GeneratedRecipe `json:"recipes"`
	}
)
