package recipe

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"tastyshare/domain"
	"tastyshare/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return m.Called(ctx, recipe).Error(0)
}

func (m *mockRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return m.Called(ctx, recipe).Error(0)
}

func (m *mockRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetRecipesByUser(ctx context.Context, userID string, offset, limit int) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetAllRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetIngredients(ctx context.Context, recipeID string) ([]*entities.Ingredient, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Ingredient), args.Error(1)
}

func (m *mockRecipeRepository) GetInstructions(ctx context.Context, recipeID string) ([]*entities.Instruction, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Instruction), args.Error(1)
}

func (m *mockRecipeRepository) GetCategoryNames(ctx context.Context, recipeID string) ([]string, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRecipeRepository) ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, rows []*entities.Ingredient) error {
	return m.Called(ctx, recipeID, rows).Error(0)
}

func (m *mockRecipeRepository) ReplaceInstructions(ctx context.Context, recipeID uuid.UUID, rows []*entities.Instruction) error {
	return m.Called(ctx, recipeID, rows).Error(0)
}

func (m *mockRecipeRepository) ClearCategoryAssignments(ctx context.Context, recipeID string) error {
	return m.Called(ctx, recipeID).Error(0)
}

func (m *mockRecipeRepository) AssignCategory(ctx context.Context, recipeID, categoryID uuid.UUID) error {
	return m.Called(ctx, recipeID, categoryID).Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) FindOrCreateByName(ctx context.Context, name string) (*entities.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryRepository) ListNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *mockUserRepository) GetProfilesByUserIDs(ctx context.Context, userIDs []string) ([]*entities.Profile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Profile), args.Error(1)
}

func (m *mockUserRepository) UpsertProfile(ctx context.Context, profile *entities.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func makeRecipes(owner uuid.UUID, n int) []*entities.Recipe {
	out := make([]*entities.Recipe, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entities.Recipe{
			ID:     uuid.New(),
			UserID: owner,
			Title:  fmt.Sprintf("recipe %d", i),
		})
	}
	return out
}

func withCategory(r *entities.Recipe, names ...string) *entities.Recipe {
	for _, name := range names {
		r.Categories = append(r.Categories, &entities.RecipeCategory{
			Category: &entities.Category{ID: uuid.New(), Name: name},
		})
	}
	return r
}

func TestGetUserRecipes(t *testing.T) {
	owner := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name     string
		offset   int
		returned int
		wantMore bool
	}{
		{name: "full page signals more", offset: 0, returned: 6, wantMore: true},
		{name: "short page ends paging", offset: 6, returned: 2, wantMore: false},
		{name: "empty page", offset: 12, returned: 0, wantMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipeRepo := new(mockRecipeRepository)
			recipeRepo.On("GetRecipesByUser", ctx, owner.String(), tt.offset, OwnerPageSize).
				Return(makeRecipes(owner, tt.returned), nil)

			svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), nil)
			res, err := svc.GetUserRecipes(ctx, owner.String(), tt.offset)

			require.NoError(t, err)
			assert.Len(t, res.Recipes, tt.returned)
			assert.Equal(t, tt.wantMore, res.HasMore)
			recipeRepo.AssertExpectations(t)
		})
	}

	t.Run("negative offset clamps to zero", func(t *testing.T) {
		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipesByUser", ctx, owner.String(), 0, OwnerPageSize).
			Return([]*entities.Recipe{}, nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), nil)
		_, err := svc.GetUserRecipes(ctx, owner.String(), -3)
		require.NoError(t, err)
		recipeRepo.AssertExpectations(t)
	})
}

func TestGetHomeSections(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	var candidates []*entities.Recipe
	for i := 0; i < 10; i++ {
		candidates = append(candidates, makeRecipes(owner, 1)[0])
	}
	withCategory(candidates[1], "featured")
	withCategory(candidates[3], "featured", "popular")
	withCategory(candidates[5], "seasonal")
	withCategory(candidates[7], "Popular")

	recipeRepo := new(mockRecipeRepository)
	recipeRepo.On("GetRecentRecipes", ctx, HomeCandidateLimit).Return(candidates, nil)

	userRepo := new(mockUserRepository)
	userRepo.On("GetProfilesByUserIDs", ctx, mock.Anything).Return([]*entities.Profile{
		{UserID: owner, FullName: "Ayu"},
	}, nil)

	svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), userRepo, nil)
	res, err := svc.GetHomeSections(ctx)

	require.NoError(t, err)
	assert.Len(t, res.Latest, HomeSectionSize)
	assert.Len(t, res.Featured, 2)
	assert.Len(t, res.Popular, 2)
	assert.Len(t, res.Seasonal, 1)

	// bucket membership follows the candidate order
	assert.Equal(t, candidates[1].ID.String(), res.Featured[0].ID)
	assert.Equal(t, candidates[3].ID.String(), res.Featured[1].ID)
	assert.Equal(t, "Ayu", res.Latest[0].Username)
}

func TestSearchRecipes(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	candidates := []*entities.Recipe{
		{ID: uuid.New(), UserID: owner, Title: "Spicy Pasta", Description: "weeknight dinner"},
		{ID: uuid.New(), UserID: owner, Title: "Green Salad", Description: "with pasta shells"},
		{ID: uuid.New(), UserID: owner, Title: "Beef Rendang", Description: "slow cooked"},
	}

	t.Run("matches title or description case-insensitively", func(t *testing.T) {
		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecentRecipes", ctx, SearchCandidateLimit).Return(candidates, nil)
		userRepo := new(mockUserRepository)
		userRepo.On("GetProfilesByUserIDs", ctx, mock.Anything).Return([]*entities.Profile{}, nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), userRepo, nil)
		res, err := svc.SearchRecipes(ctx, "PASTA")

		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, "Spicy Pasta", res.Recipes[0].Title)
		assert.Equal(t, "Green Salad", res.Recipes[1].Title)
	})

	t.Run("missing profiles fall back to Unknown", func(t *testing.T) {
		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecentRecipes", ctx, SearchCandidateLimit).Return(candidates, nil)
		userRepo := new(mockUserRepository)
		userRepo.On("GetProfilesByUserIDs", ctx, mock.Anything).Return([]*entities.Profile{}, nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), userRepo, nil)
		res, err := svc.SearchRecipes(ctx, "rendang")

		require.NoError(t, err)
		require.Equal(t, 1, res.Total)
		assert.Equal(t, domain.UnknownAuthor, res.Recipes[0].Username)
	})

	t.Run("blank query short-circuits", func(t *testing.T) {
		recipeRepo := new(mockRecipeRepository)
		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), nil)

		res, err := svc.SearchRecipes(ctx, "   ")
		require.NoError(t, err)
		assert.Empty(t, res.Recipes)
		recipeRepo.AssertNotCalled(t, "GetRecentRecipes", mock.Anything, mock.Anything)
	})
}

func TestGetRecipeDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to domain error", func(t *testing.T) {
		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipeByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), nil)
		_, err := svc.GetRecipeDetail(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("assembles children and owner name", func(t *testing.T) {
		owner := uuid.New()
		rec := &entities.Recipe{
			ID:          uuid.New(),
			UserID:      owner,
			Title:       "Nasi Goreng",
			Description: "classic fried rice",
			Timestamp:   entities.Timestamp{CreatedAt: time.Now()},
		}

		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipeByID", ctx, rec.ID.String()).Return(rec, nil)
		recipeRepo.On("GetIngredients", ctx, rec.ID.String()).Return([]*entities.Ingredient{
			{Name: "rice", Quantity: "2 cups"},
		}, nil)
		recipeRepo.On("GetInstructions", ctx, rec.ID.String()).Return([]*entities.Instruction{
			{StepNumber: 1, Description: "fry the rice"},
		}, nil)
		recipeRepo.On("GetCategoryNames", ctx, rec.ID.String()).Return([]string{"indonesian"}, nil)

		userRepo := new(mockUserRepository)
		userRepo.On("GetProfile", ctx, owner.String()).Return(&entities.Profile{
			UserID:   owner,
			FullName: "Budi",
		}, nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), userRepo, nil)
		res, err := svc.GetRecipeDetail(ctx, rec.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "Nasi Goreng", res.Title)
		assert.Equal(t, "Budi", res.Username)
		assert.Equal(t, []string{"indonesian"}, res.Tags)
		require.Len(t, res.Ingredients, 1)
		require.Len(t, res.Instructions, 1)
	})
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("compacts children and persists tags", func(t *testing.T) {
		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("CreateRecipe", ctx, mock.MatchedBy(func(r *entities.Recipe) bool {
			return r.Title == "Soto" && r.UserID == owner
		})).Return(nil)
		recipeRepo.On("ReplaceIngredients", ctx, mock.Anything, mock.MatchedBy(func(rows []*entities.Ingredient) bool {
			return len(rows) == 1 && rows[0].Name == "chicken"
		})).Return(nil)
		recipeRepo.On("ReplaceInstructions", ctx, mock.Anything, mock.MatchedBy(func(rows []*entities.Instruction) bool {
			return len(rows) == 2 && rows[0].StepNumber == 1 && rows[1].StepNumber == 2
		})).Return(nil)
		recipeRepo.On("AssignCategory", ctx, mock.Anything, mock.Anything).Return(nil)

		catRepo := new(mockCategoryRepository)
		catRepo.On("FindOrCreateByName", ctx, "soup").
			Return(&entities.Category{ID: uuid.New(), Name: "soup"}, nil)

		svc := NewRecipeService(recipeRepo, catRepo, new(mockUserRepository), nil)
		res, err := svc.CreateRecipe(ctx, domain.SaveRecipeRequest{
			Title:       "Soto",
			Description: "chicken soup",
			Ingredients: []domain.IngredientRow{
				{Name: "chicken", Quantity: "500g"},
				{Name: "", Quantity: "dropped"},
			},
			Instructions: []domain.InstructionRow{
				{StepNumber: 1, Description: "boil"},
				{StepNumber: 2, Description: ""},
				{StepNumber: 3, Description: "serve"},
			},
			Tags: []string{" Soup "},
		}, owner.String())

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		recipeRepo.AssertExpectations(t)
		catRepo.AssertExpectations(t)
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		svc := NewRecipeService(new(mockRecipeRepository), new(mockCategoryRepository), new(mockUserRepository), nil)
		_, err := svc.CreateRecipe(ctx, domain.SaveRecipeRequest{Title: "   "}, owner.String())
		assert.ErrorIs(t, err, domain.ErrTitleRequired)
	})

	t.Run("bad owner id is rejected", func(t *testing.T) {
		svc := NewRecipeService(new(mockRecipeRepository), new(mockCategoryRepository), new(mockUserRepository), nil)
		_, err := svc.CreateRecipe(ctx, domain.SaveRecipeRequest{Title: "Soto"}, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrParseUUID)
	})
}

func TestUpdateAndDeleteOwnership(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	rec := &entities.Recipe{ID: uuid.New(), UserID: owner, Title: "Gado Gado"}

	t.Run("update by non-owner is forbidden", func(t *testing.T) {
		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipeByID", ctx, rec.ID.String()).Return(rec, nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), nil)
		err := svc.UpdateRecipe(ctx, rec.ID.String(), domain.SaveRecipeRequest{Title: "x"}, stranger.String())
		assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	})

	t.Run("delete by non-owner is forbidden", func(t *testing.T) {
		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipeByID", ctx, rec.ID.String()).Return(rec, nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), nil)
		err := svc.DeleteRecipe(ctx, rec.ID.String(), stranger.String())
		assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	})

	t.Run("delete by owner cascades", func(t *testing.T) {
		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipeByID", ctx, rec.ID.String()).Return(rec, nil)
		recipeRepo.On("DeleteRecipe", ctx, rec.ID.String()).Return(nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), nil)
		err := svc.DeleteRecipe(ctx, rec.ID.String(), owner.String())
		require.NoError(t, err)
		recipeRepo.AssertExpectations(t)
	})
}

func TestGetPublicProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user maps to domain error", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetProfile", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewRecipeService(new(mockRecipeRepository), new(mockCategoryRepository), userRepo, nil)
		_, err := svc.GetPublicProfile(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("returns profile with full feed", func(t *testing.T) {
		owner := uuid.New()
		userRepo := new(mockUserRepository)
		userRepo.On("GetProfile", ctx, owner.String()).Return(&entities.Profile{
			UserID:   owner,
			FullName: "Citra",
			Hobbies:  "baking",
		}, nil)

		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetAllRecipesByUser", ctx, owner.String()).
			Return(makeRecipes(owner, 8), nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), userRepo, nil)
		res, err := svc.GetPublicProfile(ctx, owner.String())

		require.NoError(t, err)
		assert.Equal(t, "Citra", res.Profile.FullName)
		assert.Len(t, res.Recipes, 8)
	})
}

func TestSuggestTags(t *testing.T) {
	ctx := context.Background()
	catRepo := new(mockCategoryRepository)
	catRepo.On("ListNames", ctx).Return([]string{"dessert", "dinner", "drinks"}, nil)

	svc := NewRecipeService(new(mockRecipeRepository), catRepo, new(mockUserRepository), nil)
	got, err := svc.SuggestTags(ctx, "d", []string{"dinner"})

	require.NoError(t, err)
	assert.Equal(t, []string{"dessert", "drinks"}, got)
}

type mockAwsS3 struct {
	mock.Mock
}

func (m *mockAwsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowExt ...string) (string, error) {
	args := m.Called(fileName, file, folder, allowExt)
	return args.String(0), args.Error(1)
}

func (m *mockAwsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowExt ...string) (string, error) {
	args := m.Called(objectKey, file, allowExt)
	return args.String(0), args.Error(1)
}

func (m *mockAwsS3) DeleteFile(objectKey string) error {
	return m.Called(objectKey).Error(0)
}

func (m *mockAwsS3) GetPublicLinkKey(objectKey string) string {
	return m.Called(objectKey).String(0)
}

func (m *mockAwsS3) GetObjectKeyFromLink(link string) string {
	return m.Called(link).String(0)
}

func TestImageObjectLifecycle(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	imageURL := "https://bucket.s3.region.amazonaws.com/recipe-images/old"

	t.Run("delete drops the stored image object", func(t *testing.T) {
		rec := &entities.Recipe{ID: uuid.New(), UserID: owner, Title: "Soto", ImageURL: imageURL}

		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipeByID", ctx, rec.ID.String()).Return(rec, nil)
		recipeRepo.On("DeleteRecipe", ctx, rec.ID.String()).Return(nil)

		s3 := new(mockAwsS3)
		s3.On("GetObjectKeyFromLink", imageURL).Return("recipe-images/old")
		s3.On("DeleteFile", "recipe-images/old").Return(nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), s3)
		require.NoError(t, svc.DeleteRecipe(ctx, rec.ID.String(), owner.String()))
		s3.AssertExpectations(t)
	})

	t.Run("delete failure on the object does not block the row delete", func(t *testing.T) {
		rec := &entities.Recipe{ID: uuid.New(), UserID: owner, Title: "Soto", ImageURL: imageURL}

		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipeByID", ctx, rec.ID.String()).Return(rec, nil)
		recipeRepo.On("DeleteRecipe", ctx, rec.ID.String()).Return(nil)

		s3 := new(mockAwsS3)
		s3.On("GetObjectKeyFromLink", imageURL).Return("recipe-images/old")
		s3.On("DeleteFile", "recipe-images/old").Return(assert.AnError)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), s3)
		require.NoError(t, svc.DeleteRecipe(ctx, rec.ID.String(), owner.String()))
		recipeRepo.AssertExpectations(t)
	})

	t.Run("replacing the image drops the prior object", func(t *testing.T) {
		rec := &entities.Recipe{ID: uuid.New(), UserID: owner, Title: "Soto", ImageURL: imageURL}

		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipeByID", ctx, rec.ID.String()).Return(rec, nil)
		recipeRepo.On("UpdateRecipe", ctx, mock.MatchedBy(func(r *entities.Recipe) bool {
			return r.ImageURL == "https://bucket.s3.region.amazonaws.com/recipe-images/new"
		})).Return(nil)
		recipeRepo.On("ReplaceIngredients", ctx, mock.Anything, mock.Anything).Return(nil)
		recipeRepo.On("ReplaceInstructions", ctx, mock.Anything, mock.Anything).Return(nil)
		recipeRepo.On("ClearCategoryAssignments", ctx, rec.ID.String()).Return(nil)

		s3 := new(mockAwsS3)
		s3.On("GetObjectKeyFromLink", imageURL).Return("recipe-images/old")
		s3.On("DeleteFile", "recipe-images/old").Return(nil)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), s3)
		err := svc.UpdateRecipe(ctx, rec.ID.String(), domain.SaveRecipeRequest{
			Title:    "Soto",
			ImageURL: "https://bucket.s3.region.amazonaws.com/recipe-images/new",
		}, owner.String())

		require.NoError(t, err)
		s3.AssertExpectations(t)
	})

	t.Run("unchanged image leaves the object alone", func(t *testing.T) {
		rec := &entities.Recipe{ID: uuid.New(), UserID: owner, Title: "Soto", ImageURL: imageURL}

		recipeRepo := new(mockRecipeRepository)
		recipeRepo.On("GetRecipeByID", ctx, rec.ID.String()).Return(rec, nil)
		recipeRepo.On("UpdateRecipe", ctx, mock.Anything).Return(nil)
		recipeRepo.On("ReplaceIngredients", ctx, mock.Anything, mock.Anything).Return(nil)
		recipeRepo.On("ReplaceInstructions", ctx, mock.Anything, mock.Anything).Return(nil)
		recipeRepo.On("ClearCategoryAssignments", ctx, rec.ID.String()).Return(nil)

		s3 := new(mockAwsS3)

		svc := NewRecipeService(recipeRepo, new(mockCategoryRepository), new(mockUserRepository), s3)
		err := svc.UpdateRecipe(ctx, rec.ID.String(), domain.SaveRecipeRequest{
			Title:    "Soto",
			ImageURL: imageURL,
		}, owner.String())

		require.NoError(t, err)
		s3.AssertNotCalled(t, "DeleteFile", mock.Anything)
	})
}
