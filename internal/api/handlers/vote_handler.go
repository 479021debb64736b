package handlers

import (
	"errors"

	"tastyshare/domain"
	"tastyshare/internal/api/presenters"
	"tastyshare/pkg/vote"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VoteHandler interface {
		CastVote(c *fiber.Ctx) error
		GetVoteState(c *fiber.Ctx) error
	}

	voteHandler struct {
		voteService vote.VoteService
		validator   *validator.Validate
	}
)

func NewVoteHandler(voteService vote.VoteService, validator *validator.Validate) VoteHandler {
	return &voteHandler{
		voteService: voteService,
		validator:   validator,
	}
}

func (h *voteHandler) CastVote(c *fiber.Ctx) error {
	userID := localUserID(c)
	recipeID := c.Params("id")
	req := new(domain.CastVoteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCastVote, domain.ErrInvalidVoteType)
	}

	res, err := h.voteService.CastVote(c.Context(), recipeID, userID, req.VoteType)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedCastVote, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCastVote, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCastVote)
}

func (h *voteHandler) GetVoteState(c *fiber.Ctx) error {
	userID := localUserID(c)
	recipeID := c.Params("id")

	res, err := h.voteService.GetVoteState(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVotes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVotes)
}

// localUserID reads the authenticated user id when present; behind the
// optional-auth middleware the local may be absent.
func localUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}
