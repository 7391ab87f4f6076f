package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Instructions string    `gorm:"type:text" json:"instructions"` // serialized step list

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	User        *User              `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Name     string    `gorm:"type:varchar(255)" json:"name"`
	Quantity string    `gorm:"type:varchar(100)" json:"quantity"`
	// ItemOrder is caller-supplied and preserved verbatim, never derived from
	// insertion order.
	ItemOrder int `gorm:"column:item_order" json:"order"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
