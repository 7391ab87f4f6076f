package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/saulluiz/api-recipe-generator/entities"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults on the primary keys need the extension.
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Printf("error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Printf("error migrating ingredient table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Printf("error migrating recipe table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Printf("error migrating recipe ingredient table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
