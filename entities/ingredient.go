package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `gorm:"type:varchar(100)" json:"name"`
	Quantity string    `gorm:"type:varchar(50)" json:"quantity"`
	Unit     string    `gorm:"type:varchar(20)" json:"unit"`
	// ImageKey is the object key in blob storage, never exposed directly.
	// Responses carry the resolved public URL instead.
	ImageKey string `gorm:"type:varchar(500)" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
