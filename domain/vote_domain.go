package domain

import "errors"

var (
	MessageSuccessGetVotes = "success get vote state"
	MessageSuccessCastVote = "vote recorded successfully"

	MessageFailedGetVotes = "failed to get vote state"
	MessageFailedCastVote = "failed to cast vote"

	ErrInvalidVoteType = errors.New("invalid vote type")
)

type (
	CastVoteRequest struct {
		VoteType string `json:"vote_type" validate:"required,oneof=like thumbs_up thumbs_down"`
	}

	// VoteState carries the tallies per kind plus the acting user's own
	// vote ("" when none, or when the reader is anonymous).
	VoteState struct {
		Likes      int64  `json:"likes"`
		ThumbsUp   int64  `json:"thumbs_up"`
		ThumbsDown int64  `json:"thumbs_down"`
		UserVote   string `json:"user_vote,omitempty"`
	}
)
