package vote

import (
	"context"

	"tastyshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VoteRepository interface {
		CountVotesByType(ctx context.Context, recipeID string) (map[string]int64, error)
		GetUserVote(ctx context.Context, recipeID, userID string) (*entities.RecipeVote, error)
		DeleteUserVotes(ctx context.Context, recipeID, userID string) error
		ReplaceVote(ctx context.Context, vote *entities.RecipeVote) error
	}

	voteRepository struct {
		db *gorm.DB
	}
)

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) CountVotesByType(ctx context.Context, recipeID string) (map[string]int64, error) {
	var rows []struct {
		VoteType string
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeVote{}).
		Select("vote_type, count(*) as total").
		Where("recipe_id = ?", recipeID).
		Group("vote_type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.VoteType] = row.Total
	}
	return counts, nil
}

func (r *voteRepository) GetUserVote(ctx context.Context, recipeID, userID string) (*entities.RecipeVote, error) {
	vote := &entities.RecipeVote{}
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(vote).Error
	if err != nil {
		return nil, err
	}
	return vote, nil
}

func (r *voteRepository) DeleteUserVotes(ctx context.Context, recipeID, userID string) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.RecipeVote{}).Error
}

// ReplaceVote removes every vote the user holds on the recipe and inserts
// the new one inside a single transaction, so at most one row per
// (recipe, user) pair survives.
func (r *voteRepository) ReplaceVote(ctx context.Context, vote *entities.RecipeVote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("recipe_id = ? AND user_id = ?", vote.RecipeID, vote.UserID).
			Delete(&entities.RecipeVote{}).Error
		if err != nil {
			return err
		}
		if vote.ID == uuid.Nil {
			vote.ID = uuid.New()
		}
		return tx.Create(vote).Error
	})
}
