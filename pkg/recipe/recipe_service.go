package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"tastyshare/domain"
	"tastyshare/entities"
	"tastyshare/internal/utils/storage"
	"tastyshare/pkg/category"
	"tastyshare/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// OwnerPageSize is the fixed page size for a user's own listing.
	OwnerPageSize = 6
	// HomeSectionSize caps each home-page carousel.
	HomeSectionSize = 4
	// HomeCandidateLimit bounds the recent superset the home buckets are
	// derived from.
	HomeCandidateLimit = 24
	// CategoryCandidateLimit bounds the superset a category page filters.
	CategoryCandidateLimit = 100
	// SearchCandidateLimit bounds the candidate set a search scans.
	SearchCandidateLimit = 50
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SaveRecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.SaveRecipeRequest, userID string) error
		DeleteRecipe(ctx context.Context, id string, userID string) error
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error)
		GetUserRecipes(ctx context.Context, userID string, offset int) (domain.UserRecipesResponse, error)
		GetHomeSections(ctx context.Context) (domain.HomeSectionsResponse, error)
		GetRecipesByCategory(ctx context.Context, name string) ([]domain.RecipeCard, error)
		GetLatestRecipes(ctx context.Context, limit int) ([]domain.RecipeCard, error)
		SearchRecipes(ctx context.Context, query string) (domain.SearchRecipesResponse, error)
		GetPublicProfile(ctx context.Context, userID string) (domain.PublicProfileResponse, error)
		SuggestTags(ctx context.Context, partial string, selected []string) ([]string, error)
		UploadRecipeImage(ctx context.Context, file *multipart.FileHeader) (domain.UploadImageResponse, error)
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		userRepository     user.UserRepository
		s3                 storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	categoryRepository category.CategoryRepository,
	userRepository user.UserRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		userRepository:     userRepository,
		s3:                 s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SaveRecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SaveRecipeResponse{}, domain.ErrParseUUID
	}
	if strings.TrimSpace(req.Title) == "" {
		return domain.SaveRecipeResponse{}, domain.ErrTitleRequired
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.SaveRecipeResponse{}, err
	}

	// Child rows follow sequentially; a failure partway leaves a partial
	// record (no rollback, accepted limitation).
	if err := s.saveChildren(ctx, recipe.ID, req); err != nil {
		return domain.SaveRecipeResponse{}, err
	}
	if err := s.persistTags(ctx, recipe.ID, req.Tags); err != nil {
		return domain.SaveRecipeResponse{}, err
	}

	return domain.SaveRecipeResponse{ID: recipe.ID.String()}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.SaveRecipeRequest, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	if strings.TrimSpace(req.Title) == "" {
		return domain.ErrTitleRequired
	}

	recipe.Title = req.Title
	recipe.Description = req.Description
	if req.ImageURL != "" && req.ImageURL != recipe.ImageURL {
		// A replaced image orphans the previous object; drop it best effort.
		if recipe.ImageURL != "" {
			if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
				_ = s.s3.DeleteFile(objectKey)
			}
		}
		recipe.ImageURL = req.ImageURL
	}
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return err
	}

	if err := s.saveChildren(ctx, recipe.ID, req); err != nil {
		return err
	}

	// Previous assignments are cleared before the tag set is persisted.
	if err := s.recipeRepository.ClearCategoryAssignments(ctx, id); err != nil {
		return err
	}
	return s.persistTags(ctx, recipe.ID, req.Tags)
}

// saveChildren replaces the ingredient and instruction sets wholesale.
// Rows failing the editors' required-field filter are dropped and the
// surviving instructions renumbered 1..K before insertion.
func (s *recipeService) saveChildren(ctx context.Context, recipeID uuid.UUID, req domain.SaveRecipeRequest) error {
	ingredientRows := NewIngredientList(req.Ingredients).Compact()
	ingredients := make([]*entities.Ingredient, 0, len(ingredientRows))
	for _, row := range ingredientRows {
		ingredients = append(ingredients, &entities.Ingredient{
			Name:     row.Name,
			Quantity: row.Quantity,
		})
	}
	if err := s.recipeRepository.ReplaceIngredients(ctx, recipeID, ingredients); err != nil {
		return err
	}

	instructionRows := NewInstructionList(req.Instructions).Compact()
	instructions := make([]*entities.Instruction, 0, len(instructionRows))
	for _, row := range instructionRows {
		instructions = append(instructions, &entities.Instruction{
			StepNumber:  row.StepNumber,
			Description: row.Description,
		})
	}
	return s.recipeRepository.ReplaceInstructions(ctx, recipeID, instructions)
}

// persistTags runs the committed tag set through the category store: each
// tag finds or lazily creates its category, then exactly one assignment
// row is ensured per (recipe, category) pair.
func (s *recipeService) persistTags(ctx context.Context, recipeID uuid.UUID, tags []string) error {
	for _, tag := range NewTagSet(tags...).Tags() {
		cat, err := s.categoryRepository.FindOrCreateByName(ctx, tag)
		if err != nil {
			return err
		}
		if err := s.recipeRepository.AssignCategory(ctx, recipeID, cat.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if recipe.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	ingredients, err := s.recipeRepository.GetIngredients(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	instructions, err := s.recipeRepository.GetInstructions(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	tags, err := s.recipeRepository.GetCategoryNames(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	ingredientRows := make([]domain.IngredientRow, 0, len(ingredients))
	for _, ing := range ingredients {
		ingredientRows = append(ingredientRows, domain.IngredientRow{
			Name:     ing.Name,
			Quantity: ing.Quantity,
		})
	}
	instructionRows := make([]domain.InstructionRow, 0, len(instructions))
	for _, inst := range instructions {
		instructionRows = append(instructionRows, domain.InstructionRow{
			StepNumber:  inst.StepNumber,
			Description: inst.Description,
		})
	}

	return domain.RecipeDetailResponse{
		ID:           recipe.ID.String(),
		UserID:       recipe.UserID.String(),
		Title:        recipe.Title,
		Description:  recipe.Description,
		ImageURL:     recipe.ImageURL,
		Username:     s.resolveOwnerName(ctx, recipe.UserID.String()),
		Ingredients:  ingredientRows,
		Instructions: instructionRows,
		Tags:         tags,
		CreatedAt:    recipe.CreatedAt,
	}, nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, userID string, offset int) (domain.UserRecipesResponse, error) {
	if offset < 0 {
		offset = 0
	}
	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID, offset, OwnerPageSize)
	if err != nil {
		return domain.UserRecipesResponse{}, err
	}

	cards := make([]domain.RecipeCard, 0, len(recipes))
	for _, r := range recipes {
		cards = append(cards, cardFromRecipe(r))
	}

	// A page shorter than the page size signals exhaustion.
	return domain.UserRecipesResponse{
		Recipes: cards,
		HasMore: len(recipes) == OwnerPageSize,
	}, nil
}

func (s *recipeService) GetLatestRecipes(ctx context.Context, limit int) ([]domain.RecipeCard, error) {
	if limit <= 0 {
		limit = HomeSectionSize
	}
	recipes, err := s.recipeRepository.GetRecentRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.cardsWithOwners(ctx, recipes), nil
}

func (s *recipeService) GetHomeSections(ctx context.Context) (domain.HomeSectionsResponse, error) {
	candidates, err := s.recipeRepository.GetRecentRecipes(ctx, HomeCandidateLimit)
	if err != nil {
		return domain.HomeSectionsResponse{}, err
	}

	latest := candidates
	if len(latest) > HomeSectionSize {
		latest = latest[:HomeSectionSize]
	}

	return domain.HomeSectionsResponse{
		Latest:   s.cardsWithOwners(ctx, latest),
		Featured: s.cardsWithOwners(ctx, capRecipes(category.Classify(candidates, "featured"), HomeSectionSize)),
		Popular:  s.cardsWithOwners(ctx, capRecipes(category.Classify(candidates, "popular"), HomeSectionSize)),
		Seasonal: s.cardsWithOwners(ctx, capRecipes(category.Classify(candidates, "seasonal"), HomeSectionSize)),
	}, nil
}

func (s *recipeService) GetRecipesByCategory(ctx context.Context, name string) ([]domain.RecipeCard, error) {
	candidates, err := s.recipeRepository.GetRecentRecipes(ctx, CategoryCandidateLimit)
	if err != nil {
		return nil, err
	}
	if name == "latest" {
		return s.cardsWithOwners(ctx, candidates), nil
	}
	return s.cardsWithOwners(ctx, category.Classify(candidates, name)), nil
}

// SearchRecipes scans a bounded recent candidate set for a case-insensitive
// substring match on title or description. Owner names and category names
// are attached for presentation; they never restrict an accepted match.
func (s *recipeService) SearchRecipes(ctx context.Context, query string) (domain.SearchRecipesResponse, error) {
	needle := strings.ToLower(SanitizeSearchQuery(query))
	if needle == "" {
		return domain.SearchRecipesResponse{Recipes: []domain.SearchResult{}}, nil
	}

	candidates, err := s.recipeRepository.GetRecentRecipes(ctx, SearchCandidateLimit)
	if err != nil {
		return domain.SearchRecipesResponse{}, err
	}

	var matched []*entities.Recipe
	for _, r := range candidates {
		if strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle) {
			matched = append(matched, r)
		}
	}

	cards := s.cardsWithOwners(ctx, matched)
	results := make([]domain.SearchResult, 0, len(matched))
	for i, r := range matched {
		results = append(results, domain.SearchResult{
			RecipeCard:  cards[i],
			Description: r.Description,
			Tags:        categoryNames(r),
		})
	}

	return domain.SearchRecipesResponse{
		Recipes: results,
		Total:   len(results),
	}, nil
}

func (s *recipeService) GetPublicProfile(ctx context.Context, userID string) (domain.PublicProfileResponse, error) {
	profile, err := s.userRepository.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PublicProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.PublicProfileResponse{}, err
	}

	recipes, err := s.recipeRepository.GetAllRecipesByUser(ctx, userID)
	if err != nil {
		return domain.PublicProfileResponse{}, err
	}

	posts := make([]domain.PublicRecipePost, 0, len(recipes))
	for _, r := range recipes {
		posts = append(posts, domain.PublicRecipePost{
			ID:          r.ID.String(),
			Title:       r.Title,
			Description: r.Description,
			ImageURL:    r.ImageURL,
			CreatedAt:   r.CreatedAt,
		})
	}

	return domain.PublicProfileResponse{
		Profile: domain.ProfileResponse{
			UserID:     profile.UserID.String(),
			FullName:   profile.FullName,
			Hobbies:    profile.Hobbies,
			ProfilePic: profile.ProfilePic,
		},
		Recipes: posts,
	}, nil
}

// SuggestTags feeds the edit-form autocomplete: candidates come from the
// full category universe, minus the already-selected tags, capped by the
// tag editor.
func (s *recipeService) SuggestTags(ctx context.Context, partial string, selected []string) ([]string, error) {
	universe, err := s.categoryRepository.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	return NewTagSet(selected...).Suggest(partial, universe), nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, file *multipart.FileHeader) (domain.UploadImageResponse, error) {
	if file == nil {
		return domain.UploadImageResponse{}, domain.ErrFileNotFound
	}

	fileName := uploadFileName(file.Filename)
	objectKey, err := s.s3.UploadFile(fileName, file, "recipe-images", storage.AllowImage...)
	if err != nil {
		return domain.UploadImageResponse{}, err
	}
	return domain.UploadImageResponse{URL: s.s3.GetPublicLinkKey(objectKey)}, nil
}

// SanitizeSearchQuery strips characters that would corrupt a pattern
// match before the query reaches any filter.
func SanitizeSearchQuery(query string) string {
	replacer := strings.NewReplacer(
		"%", "",
		"_", "",
		"'", "",
		`"`, "",
		`\`, "",
	)
	return strings.TrimSpace(replacer.Replace(query))
}

// cardsWithOwners maps recipes to cards and batch-resolves the owners'
// display names: distinct ids are collected first and looked up in one
// query. A missing or failed lookup degrades to "Unknown".
func (s *recipeService) cardsWithOwners(ctx context.Context, recipes []*entities.Recipe) []domain.RecipeCard {
	cards := make([]domain.RecipeCard, 0, len(recipes))
	if len(recipes) == 0 {
		return cards
	}

	seen := make(map[string]bool)
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		id := r.UserID.String()
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	names := make(map[string]string, len(ids))
	if profiles, err := s.userRepository.GetProfilesByUserIDs(ctx, ids); err == nil {
		for _, p := range profiles {
			if p.FullName != "" {
				names[p.UserID.String()] = p.FullName
			}
		}
	}

	for _, r := range recipes {
		card := cardFromRecipe(r)
		card.Username = names[r.UserID.String()]
		if card.Username == "" {
			card.Username = domain.UnknownAuthor
		}
		cards = append(cards, card)
	}
	return cards
}

func (s *recipeService) resolveOwnerName(ctx context.Context, userID string) string {
	profile, err := s.userRepository.GetProfile(ctx, userID)
	if err != nil || profile.FullName == "" {
		return domain.UnknownAuthor
	}
	return profile.FullName
}

func cardFromRecipe(r *entities.Recipe) domain.RecipeCard {
	return domain.RecipeCard{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		Title:     r.Title,
		ImageURL:  r.ImageURL,
		CreatedAt: r.CreatedAt,
	}
}

func categoryNames(r *entities.Recipe) []string {
	names := make([]string, 0, len(r.Categories))
	for _, rc := range r.Categories {
		if rc.Category != nil {
			names = append(names, rc.Category.Name)
		}
	}
	return names
}

func capRecipes(recipes []*entities.Recipe, limit int) []*entities.Recipe {
	if len(recipes) > limit {
		return recipes[:limit]
	}
	return recipes
}

func uploadFileName(original string) string {
	base := original
	if idx := strings.LastIndex(original, "."); idx > 0 {
		base = original[:idx]
	}
	base = strings.ReplaceAll(base, " ", "-")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}
