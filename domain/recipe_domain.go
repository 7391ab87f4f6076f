package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveRecipe     = "recipe saved successfully"
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessGetRecipe      = "recipe retrieved successfully"
	MessageSuccessUpdateRecipe   = "recipe updated successfully"
	MessageSuccessDeleteRecipe   = "recipe deleted successfully"
	MessageSuccessGenerateRecipe = "recipes generated successfully"

	MessageFailedSaveRecipe     = "failed to save recipe"
	MessageFailedGetRecipes     = "failed to retrieve recipes"
	MessageFailedGetRecipe      = "failed to retrieve recipe"
	MessageFailedUpdateRecipe   = "failed to update recipe"
	MessageFailedDeleteRecipe   = "failed to delete recipe"
	MessageFailedGenerateRecipe = "failed to generate recipe"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrRecipeForbidden = errors.New("recipe belongs to another user")
)

type (
	SaveRecipeIngredient struct {
		Name     string `json:"name" validate:"required,max=255"`
		Quantity string `json:"quantity" validate:"required,max=100"`
		Order    int    `json:"order" validate:"min=0"`
	}

	SaveRecipeRequest struct {
		Name         string                 `json:"name" validate:"required,max=255"`
		Instructions string                 `json:"instructions" validate:"required"`
		Ingredients  []SaveRecipeIngredient `json:"ingredients" validate:"required,min=1,dive"`
	}

	UpdateRecipeRequest struct {
		Name         string `json:"name" validate:"omitempty,max=255"`
		Instructions string `json:"instructions" validate:"omitempty"`
	}

	RecipeIngredientResponse struct {
		ID       string `json:"id"`
		RecipeID string `json:"recipe_id"`
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Order    int    `json:"order"`
	}

	RecipeResponse struct {
		ID           string                     `json:"id"`
		UserID       string                     `json:"user_id"`
		Name         string                     `json:"name"`
		Instructions string                     `json:"instructions"`
		Ingredients  []RecipeIngredientResponse `json:"ingredients"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	// RecipeSummary is the listing projection, it carries a line count
	// instead of the full ingredient list.
	RecipeSummary struct {
		ID               string    `json:"id"`
		Name             string    `json:"name"`
		IngredientsCount int       `json:"ingredients_count"`
		CreatedAt        time.Time `json:"created_at"`
	}
)
