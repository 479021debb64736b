package routes

import (
	"tastyshare/internal/api/handlers"
	"tastyshare/internal/middleware"
	"tastyshare/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	VoteHandler       handlers.VoteHandler
	NewsletterHandler handlers.NewsletterHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Votes()
	c.Newsletter()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetMe)
		user.Patch("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/profile/image", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProfileImage)
		user.Get("/:user_id/profile", c.RecipeHandler.GetPublicProfile)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// Public reads
	recipes.Get("/home", c.RecipeHandler.GetHomeSections)
	recipes.Get("/latest", c.RecipeHandler.GetLatestRecipes)
	recipes.Get("/search", c.RecipeHandler.SearchRecipes)
	recipes.Get("/tags/suggest", c.RecipeHandler.SuggestTags)
	recipes.Get("/category/:name", c.RecipeHandler.GetRecipesByCategory)

	// Owner operations
	recipes.Get("/mine", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetMyRecipes)
	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Post("/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)

	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) Votes() {
	votes := c.App.Group("/api/v1/recipes/:id/votes")
	votes.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.VoteHandler.GetVoteState)
	votes.Post("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.VoteHandler.CastVote)
}

func (c *Config) Newsletter() {
	c.App.Post("/api/v1/newsletter/subscribe", c.NewsletterHandler.Subscribe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
