package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/saulluiz/api-recipe-generator/internal/api/handlers"
	"github.com/saulluiz/api-recipe-generator/internal/api/routes"
	"github.com/saulluiz/api-recipe-generator/internal/middleware"
	"github.com/saulluiz/api-recipe-generator/internal/utils"
	"github.com/saulluiz/api-recipe-generator/internal/utils/mailing"
	"github.com/saulluiz/api-recipe-generator/internal/utils/storage"
	"github.com/saulluiz/api-recipe-generator/pkg/generation"
	"github.com/saulluiz/api-recipe-generator/pkg/ingredient"
	"github.com/saulluiz/api-recipe-generator/pkg/jwt"
	"github.com/saulluiz/api-recipe-generator/pkg/recipe"
	"github.com/saulluiz/api-recipe-generator/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3()
	if err != nil {
		return nil, err
	}
	llmClient, err := generation.NewClient()
	if err != nil {
		return nil, err
	}
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, user.NewBcryptHasher(), mailer)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, s3)
	generationService := generation.NewGenerationService(llmClient)
	recipeService := recipe.NewRecipeService(recipeRepository, generationService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
		UserRepository:    userRepository,
	}
	routesConfig.Setup()
	return app, nil
}
