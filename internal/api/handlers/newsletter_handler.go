package handlers

import (
	"errors"

	"tastyshare/domain"
	"tastyshare/internal/api/presenters"
	"tastyshare/pkg/newsletter"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NewsletterHandler interface {
		Subscribe(c *fiber.Ctx) error
	}

	newsletterHandler struct {
		newsletterService newsletter.NewsletterService
		validator         *validator.Validate
	}
)

func NewNewsletterHandler(newsletterService newsletter.NewsletterService, validator *validator.Validate) NewsletterHandler {
	return &newsletterHandler{
		newsletterService: newsletterService,
		validator:         validator,
	}
}

func (h *newsletterHandler) Subscribe(c *fiber.Ctx) error {
	req := new(domain.SubscribeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubscribe, err)
	}

	res, err := h.newsletterService.Subscribe(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubscribe, err)
		case errors.Is(err, domain.ErrAlreadySubscribed):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSubscribe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}
