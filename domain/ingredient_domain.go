package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessGetIngredient    = "ingredient retrieved successfully"

	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	CreateIngredientRequest struct {
		Name     string                `json:"name" form:"name" validate:"required,min=1,max=100"`
		Quantity string                `json:"quantity" form:"quantity" validate:"required,min=1,max=50"`
		Unit     string                `json:"unit" form:"unit" validate:"required,min=1,max=20"`
		Image    *multipart.FileHeader `json:"-" form:"-" validate:"omitempty"`
	}

	UpdateIngredientRequest struct {
		Name     string                `json:"name" form:"name" validate:"omitempty,max=100"`
		Quantity string                `json:"quantity" form:"quantity" validate:"omitempty,max=50"`
		Unit     string                `json:"unit" form:"unit" validate:"omitempty,max=20"`
		Image    *multipart.FileHeader `json:"-" form:"-" validate:"omitempty"`
	}

	IngredientResponse struct {
		ID       string `json:"id"`
		UserID   string `json:"user_id"`
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
		ImageURL string `json:"image_url,omitempty"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
