package recipe

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulluiz/api-recipe-generator/entities"
)

type (
	// RecipeRepository reads are unscoped by owner, the service performs
	// the ownership check so not-found and forbidden stay distinguishable.
	RecipeRepository interface {
		Create(ctx context.Context, recipe *entities.Recipe, items []entities.RecipeIngredient) error
		GetByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		Update(ctx context.Context, id string, name string, instructions string) (*entities.Recipe, error)
		Delete(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create inserts the recipe row and all of its ingredient lines in one
// transaction. A failing line insert rolls back the recipe row.
func (r *recipeRepository) Create(ctx context.Context, recipe *entities.Recipe, items []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].RecipeID = recipe.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}

		recipe.Ingredients = items
		return nil
	})
}

func (r *recipeRepository) GetByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_order asc")
		}).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_order asc")
		}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Update(ctx context.Context, id string, name string, instructions string) (*entities.Recipe, error) {
	recipe, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		recipe.Name = name
	}
	if instructions != "" {
		recipe.Instructions = instructions
	}

	if err := r.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Recipe{}).Error
}
