package ingredient

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulluiz/api-recipe-generator/domain"
	"github.com/saulluiz/api-recipe-generator/entities"
	"github.com/saulluiz/api-recipe-generator/internal/utils/storage"
)

const imageFolder = "ingredients"

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error)
		GetIngredient(ctx context.Context, id string, userID string) (domain.IngredientResponse, error)
		ListIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string, userID string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, s3 storage.AwsS3) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	// Upload first: a failed upload aborts before any database write.
	var imageKey storage.ObjectKey
	if req.Image != nil {
		imageKey, err = s.s3.UploadFile(ctx, fmt.Sprintf("ingredient-%s", req.Name), req.Image, imageFolder, storage.AllowImage...)
		if err != nil {
			return domain.IngredientResponse{}, err
		}
	}

	ingredient := &entities.Ingredient{
		ID:       uuid.New(),
		UserID:   userUUID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		ImageKey: string(imageKey),
	}

	if err := s.ingredientRepository.Create(ctx, ingredient); err != nil {
		// The row never made it in, remove the uploaded blob so it does
		// not orphan.
		if imageKey != "" {
			if delErr := s.s3.DeleteFile(ctx, imageKey); delErr != nil {
				log.Printf("failed to delete orphaned blob %s: %v", imageKey, delErr)
			}
		}
		return domain.IngredientResponse{}, err
	}

	return s.toResponse(ingredient), nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id string, userID string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	return s.toResponse(ingredient), nil
}

func (s *ingredientService) ListIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, s.toResponse(ingredient))
	}
	return response, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	oldKey := storage.ObjectKey(ingredient.ImageKey)

	// Stage the new blob before touching the row. The old blob is only
	// removed after the new reference is durably committed.
	var newKey storage.ObjectKey
	if req.Image != nil {
		newKey, err = s.s3.UploadFile(ctx, fmt.Sprintf("ingredient-%s", ingredient.Name), req.Image, imageFolder, storage.AllowImage...)
		if err != nil {
			return domain.IngredientResponse{}, err
		}
		ingredient.ImageKey = string(newKey)
	}

	if req.Name != "" {
		ingredient.Name = req.Name
	}
	if req.Quantity != "" {
		ingredient.Quantity = req.Quantity
	}
	if req.Unit != "" {
		ingredient.Unit = req.Unit
	}

	if err := s.ingredientRepository.Update(ctx, ingredient); err != nil {
		if newKey != "" {
			if delErr := s.s3.DeleteFile(ctx, newKey); delErr != nil {
				log.Printf("failed to delete staged blob %s: %v", newKey, delErr)
			}
		}
		return domain.IngredientResponse{}, err
	}

	if newKey != "" && oldKey != "" {
		if delErr := s.s3.DeleteFile(ctx, oldKey); delErr != nil {
			log.Printf("failed to delete replaced blob %s: %v", oldKey, delErr)
		}
	}

	return s.toResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string, userID string) error {
	ingredient, err := s.ingredientRepository.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	// Row first, blob second. Once the authoritative row is gone a failed
	// blob delete is logged, not escalated.
	if err := s.ingredientRepository.Delete(ctx, id, userID); err != nil {
		return err
	}

	if ingredient.ImageKey != "" {
		if delErr := s.s3.DeleteFile(ctx, storage.ObjectKey(ingredient.ImageKey)); delErr != nil {
			log.Printf("failed to delete blob %s: %v", ingredient.ImageKey, delErr)
		}
	}

	return nil
}

func (s *ingredientService) toResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:        ingredient.ID.String(),
		UserID:    ingredient.UserID.String(),
		Name:      ingredient.Name,
		Quantity:  ingredient.Quantity,
		Unit:      ingredient.Unit,
		ImageURL:  s.s3.PublicURL(storage.ObjectKey(ingredient.ImageKey)),
		CreatedAt: ingredient.CreatedAt,
		UpdatedAt: ingredient.UpdatedAt,
	}
}
