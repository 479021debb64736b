package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessSearchRecipes   = "success search recipes"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrTitleRequired  = errors.New("recipe title must not be empty")
)

// UnknownAuthor is the display name attached when an owner's profile
// cannot be resolved.
const UnknownAuthor = "Unknown"

type (
	IngredientRow struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
	}

	InstructionRow struct {
		StepNumber  int    `json:"step_number,omitempty"`
		Description string `json:"description"`
	}

	SaveRecipeRequest struct {
		Title        string           `json:"title" validate:"required"`
		Description  string           `json:"description" validate:"required"`
		ImageURL     string           `json:"image_url,omitempty"`
		Ingredients  []IngredientRow  `json:"ingredients"`
		Instructions []InstructionRow `json:"instructions"`
		Tags         []string         `json:"tags"`
	}

	SaveRecipeResponse struct {
		ID string `json:"id"`
	}

	// RecipeCard is the denormalized card used by listings and carousels.
	RecipeCard struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		Title     string    `json:"title"`
		ImageURL  string    `json:"image_url,omitempty"`
		Username  string    `json:"username,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		ID           string           `json:"id"`
		UserID       string           `json:"user_id"`
		Title        string           `json:"title"`
		Description  string           `json:"description"`
		ImageURL     string           `json:"image_url,omitempty"`
		Username     string           `json:"username"`
		Ingredients  []IngredientRow  `json:"ingredients"`
		Instructions []InstructionRow `json:"instructions"`
		Tags         []string         `json:"tags"`
		CreatedAt    time.Time        `json:"created_at"`
	}

	HomeSectionsResponse struct {
		Latest   []RecipeCard `json:"latest"`
		Featured []RecipeCard `json:"featured"`
		Popular  []RecipeCard `json:"popular"`
		Seasonal []RecipeCard `json:"seasonal"`
	}

	UserRecipesResponse struct {
		Recipes []RecipeCard `json:"recipes"`
		HasMore bool         `json:"has_more"`
	}

	SearchRecipesResponse struct {
		Recipes []SearchResult `json:"recipes"`
		Total   int            `json:"total"`
	}

	SearchResult struct {
		RecipeCard
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
	}
)
