package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"type:varchar(50);uniqueIndex" json:"username"`
	Email    string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Password string    `gorm:"type:varchar(255)" json:"-"`
	FullName string    `gorm:"type:varchar(100)" json:"full_name"`
	Verified bool      `json:"verified"`

	Ingredients []Ingredient `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipes     []Recipe     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
