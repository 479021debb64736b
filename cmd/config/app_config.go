package config

import (
	"os"
	"time"

	"tastyshare/internal/api/handlers"
	"tastyshare/internal/api/routes"
	"tastyshare/internal/middleware"
	"tastyshare/internal/utils"
	"tastyshare/internal/utils/storage"
	"tastyshare/pkg/category"
	"tastyshare/pkg/jwt"
	"tastyshare/pkg/newsletter"
	"tastyshare/pkg/recipe"
	"tastyshare/pkg/user"
	"tastyshare/pkg/vote"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	voteRepository := vote.NewVoteRepository(db)
	newsletterRepository := newsletter.NewNewsletterRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, categoryRepository, userRepository, s3)
	voteService := vote.NewVoteService(voteRepository)
	newsletterService := newsletter.NewNewsletterService(newsletterRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	voteHandler := handlers.NewVoteHandler(voteService, validator)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		VoteHandler:       voteHandler,
		NewsletterHandler: newsletterHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
