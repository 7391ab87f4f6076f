package recipe

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulluiz/api-recipe-generator/domain"
	"github.com/saulluiz/api-recipe-generator/entities"
	"github.com/saulluiz/api-recipe-generator/pkg/generation"
)

type (
	RecipeService interface {
		GenerateRecipes(ctx context.Context, req domain.GenerateRecipeRequest) (domain.GenerateRecipeResponse, error)
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id string, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		ListRecipes(ctx context.Context, userID string) ([]domain.RecipeSummary, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		generationService generation.GenerationService
	}
)

func NewRecipeService(recipeRepository RecipeRepository, generationService generation.GenerationService) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		generationService: generationService,
	}
}

func (s *recipeService) GenerateRecipes(ctx context.Context, req domain.GenerateRecipeRequest) (domain.GenerateRecipeResponse, error) {
	count := req.Count
	if count < 1 {
		count = 1
	}

	if count == 1 {
		recipe, err := s.generationService.GenerateRecipe(ctx, req.Ingredients, nil)
		if err != nil {
			return domain.GenerateRecipeResponse{}, err
		}
		return domain.GenerateRecipeResponse{Recipes: []domain.GeneratedRecipe{recipe}}, nil
	}

	// Multi-recipe generation is best-effort: failed attempts are skipped
	// and whatever subset succeeded is returned.
	recipes, _ := s.generationService.GenerateMany(ctx, req.Ingredients, count)
	return domain.GenerateRecipeResponse{Recipes: recipes}, nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         req.Name,
		Instructions: req.Instructions,
	}

	items := make([]entities.RecipeIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		items = append(items, entities.RecipeIngredient{
			ID:        uuid.New(),
			Name:      ing.Name,
			Quantity:  ing.Quantity,
			ItemOrder: ing.Order,
		})
	}

	if err := s.recipeRepository.Create(ctx, recipe, items); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

// authorizeRecipe loads the recipe without owner scoping, then checks the
// owner. A missing record and a foreign record surface as distinct errors.
func (s *recipeService) authorizeRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if recipe.UserID.String() != userID {
		return nil, domain.ErrRecipeForbidden
	}

	return recipe, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id string, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.authorizeRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if _, err := s.authorizeRecipe(ctx, id, userID); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe, err := s.recipeRepository.Update(ctx, id, req.Name, req.Instructions)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) ListRecipes(ctx context.Context, userID string) ([]domain.RecipeSummary, error) {
	recipes, err := s.recipeRepository.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, domain.RecipeSummary{
			ID:               recipe.ID.String(),
			Name:             recipe.Name,
			IngredientsCount: len(recipe.Ingredients),
			CreatedAt:        recipe.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	if _, err := s.authorizeRecipe(ctx, id, userID); err != nil {
		return err
	}

	return s.recipeRepository.Delete(ctx, id)
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, domain.RecipeIngredientResponse{
			ID:       ing.ID.String(),
			RecipeID: ing.RecipeID.String(),
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Order:    ing.ItemOrder,
		})
	}

	return domain.RecipeResponse{
		ID:           recipe.ID.String(),
		UserID:       recipe.UserID.String(),
		Name:         recipe.Name,
		Instructions: recipe.Instructions,
		Ingredients:  ingredients,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
}
