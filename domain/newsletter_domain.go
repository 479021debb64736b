package domain

import "errors"

var (
	MessageSuccessSubscribe = "subscribed to newsletter"

	MessageFailedSubscribe = "failed to subscribe"

	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

type (
	SubscribeRequest struct {
		Email string `json:"email" validate:"required"`
	}

	SubscribeResponse struct {
		Email string `json:"email"`
	}
)
