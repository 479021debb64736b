package newsletter

import (
	"context"

	"tastyshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NewsletterRepository interface {
		EmailExists(ctx context.Context, email string) (bool, error)
		CreateSubscriber(ctx context.Context, subscriber *entities.Subscriber) error
	}

	newsletterRepository struct {
		db *gorm.DB
	}
)

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Subscriber{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *newsletterRepository) CreateSubscriber(ctx context.Context, subscriber *entities.Subscriber) error {
	if subscriber.ID == uuid.Nil {
		subscriber.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(subscriber).Error
}
