package category

import (
	"context"
	"errors"
	"strings"

	"tastyshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		FindOrCreateByName(ctx context.Context, name string) (*entities.Category, error)
		ListNames(ctx context.Context) ([]string, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// FindOrCreateByName looks the label up by its case-normalized name and
// lazily creates it on first use.
func (r *categoryRepository) FindOrCreateByName(ctx context.Context, name string) (*entities.Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	var cat entities.Category
	err := r.db.WithContext(ctx).Where("name = ?", normalized).First(&cat).Error
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat = entities.Category{
		ID:   uuid.New(),
		Name: normalized,
	}
	if err := r.db.WithContext(ctx).Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *categoryRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Order("name asc").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
