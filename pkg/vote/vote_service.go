package vote

import (
	"context"
	"errors"

	"tastyshare/domain"
	"tastyshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VoteService interface {
		CastVote(ctx context.Context, recipeID, userID, voteType string) (domain.VoteState, error)
		GetVoteState(ctx context.Context, recipeID, userID string) (domain.VoteState, error)
	}

	voteService struct {
		voteRepository VoteRepository
	}
)

func NewVoteService(voteRepository VoteRepository) VoteService {
	return &voteService{voteRepository: voteRepository}
}

func isValidVoteType(voteType string) bool {
	switch voteType {
	case entities.VoteLike, entities.VoteThumbsUp, entities.VoteThumbsDown:
		return true
	}
	return false
}

// CastVote toggles or replaces the caller's vote. Casting the kind the
// user already holds retracts it; casting a different kind replaces the
// old one. The returned state reflects the store after the change.
func (s *voteService) CastVote(ctx context.Context, recipeID, userID, voteType string) (domain.VoteState, error) {
	if userID == "" {
		return domain.VoteState{}, domain.ErrUnauthenticated
	}
	if !isValidVoteType(voteType) {
		return domain.VoteState{}, domain.ErrInvalidVoteType
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.VoteState{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.VoteState{}, domain.ErrParseUUID
	}

	current, err := s.voteRepository.GetUserVote(ctx, recipeID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.VoteState{}, err
	}

	if current != nil && current.VoteType == voteType {
		if err := s.voteRepository.DeleteUserVotes(ctx, recipeID, userID); err != nil {
			return domain.VoteState{}, err
		}
		return s.GetVoteState(ctx, recipeID, userID)
	}

	vote := &entities.RecipeVote{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		VoteType: voteType,
	}
	if err := s.voteRepository.ReplaceVote(ctx, vote); err != nil {
		return domain.VoteState{}, err
	}
	return s.GetVoteState(ctx, recipeID, userID)
}

// GetVoteState reports the per-kind tallies plus the caller's own vote.
// An empty userID yields the anonymous view with UserVote unset.
func (s *voteService) GetVoteState(ctx context.Context, recipeID, userID string) (domain.VoteState, error) {
	counts, err := s.voteRepository.CountVotesByType(ctx, recipeID)
	if err != nil {
		return domain.VoteState{}, err
	}

	state := domain.VoteState{
		Likes:      counts[entities.VoteLike],
		ThumbsUp:   counts[entities.VoteThumbsUp],
		ThumbsDown: counts[entities.VoteThumbsDown],
	}

	if userID != "" {
		current, err := s.voteRepository.GetUserVote(ctx, recipeID, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.VoteState{}, err
		}
		if current != nil {
			state.UserVote = current.VoteType
		}
	}
	return state, nil
}
