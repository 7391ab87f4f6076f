package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saulluiz/api-recipe-generator/internal/api/handlers"
	"github.com/saulluiz/api-recipe-generator/internal/middleware"
	"github.com/saulluiz/api-recipe-generator/pkg/jwt"
	"github.com/saulluiz/api-recipe-generator/pkg/user"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
	UserRepository    user.UserRepository
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Ingredients()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/verify", c.UserHandler.VerifyEmail)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository), c.UserHandler.Me)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository))

	ingredients.Post("", c.IngredientHandler.CreateIngredient)
	ingredients.Get("", c.IngredientHandler.ListIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredient)
	ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository))

	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
	recipes.Post("/save", c.RecipeHandler.SaveRecipe)
	recipes.Get("", c.RecipeHandler.ListRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipe)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
