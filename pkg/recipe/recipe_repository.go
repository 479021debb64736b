package recipe

import (
	"context"
	"errors"

	"tastyshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID string, offset, limit int) ([]*entities.Recipe, error)
		GetAllRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetIngredients(ctx context.Context, recipeID string) ([]*entities.Ingredient, error)
		GetInstructions(ctx context.Context, recipeID string) ([]*entities.Instruction, error)
		GetCategoryNames(ctx context.Context, recipeID string) ([]string, error)
		ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, rows []*entities.Ingredient) error
		ReplaceInstructions(ctx context.Context, recipeID uuid.UUID, rows []*entities.Instruction) error
		ClearCategoryAssignments(ctx context.Context, recipeID string) error
		AssignCategory(ctx context.Context, recipeID, categoryID uuid.UUID) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipe removes the recipe together with its child rows and votes.
// The deletes run sequentially without a surrounding transaction.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&entities.Ingredient{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&entities.Instruction{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&entities.RecipeCategory{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&entities.RecipeVote{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecentRecipes returns the newest recipes with their category
// assignments loaded; callers filter the set client-side.
func (r *recipeRepository) GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories.Category").
		Order("created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID string, offset, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetAllRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetIngredients(ctx context.Context, recipeID string) ([]*entities.Ingredient, error) {
	var rows []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) GetInstructions(ctx context.Context, recipeID string) ([]*entities.Instruction, error) {
	var rows []*entities.Instruction
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_number asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) GetCategoryNames(ctx context.Context, recipeID string) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeCategory{}).
		Joins("JOIN categories ON categories.id = recipe_categories.category_id").
		Where("recipe_categories.recipe_id = ?", recipeID).
		Pluck("categories.name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// ReplaceIngredients drops every existing row for the recipe and inserts
// the new set; the rows get fresh identities on every save.
func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, rows []*entities.Ingredient) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.Ingredient{}).Error; err != nil {
		return err
	}
	for _, row := range rows {
		row.ID = uuid.New()
		row.RecipeID = recipeID
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *recipeRepository) ReplaceInstructions(ctx context.Context, recipeID uuid.UUID, rows []*entities.Instruction) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.Instruction{}).Error; err != nil {
		return err
	}
	for _, row := range rows {
		row.ID = uuid.New()
		row.RecipeID = recipeID
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *recipeRepository) ClearCategoryAssignments(ctx context.Context, recipeID string) error {
	return r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.RecipeCategory{}).Error
}

// AssignCategory ensures exactly one assignment row exists for the pair;
// duplicates are prevented by lookup-before-insert.
func (r *recipeRepository) AssignCategory(ctx context.Context, recipeID, categoryID uuid.UUID) error {
	var existing entities.RecipeCategory
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND category_id = ?", recipeID, categoryID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	assignment := entities.RecipeCategory{
		ID:         uuid.New(),
		RecipeID:   recipeID,
		CategoryID: categoryID,
	}
	return r.db.WithContext(ctx).Create(&assignment).Error
}
