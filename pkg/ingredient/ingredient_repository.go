package ingredient

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulluiz/api-recipe-generator/entities"
)

type (
	// IngredientRepository scopes every lookup to the owning user, so a
	// foreign record is indistinguishable from a missing one.
	IngredientRepository interface {
		Create(ctx context.Context, ingredient *entities.Ingredient) error
		GetByID(ctx context.Context, id string, userID string) (*entities.Ingredient, error)
		GetAllByUser(ctx context.Context, userID string) ([]*entities.Ingredient, error)
		Update(ctx context.Context, ingredient *entities.Ingredient) error
		Delete(ctx context.Context, id string, userID string) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetByID(ctx context.Context, id string, userID string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetAllByUser(ctx context.Context, userID string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) Delete(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Ingredient{}).Error
}
