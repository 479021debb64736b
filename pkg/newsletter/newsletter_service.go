package newsletter

import (
	"context"
	"regexp"
	"strings"

	"tastyshare/domain"
	"tastyshare/entities"
	"tastyshare/internal/utils/mailing"

	"github.com/gofiber/fiber/v2/log"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type (
	NewsletterService interface {
		Subscribe(ctx context.Context, req domain.SubscribeRequest) (domain.SubscribeResponse, error)
	}

	newsletterService struct {
		newsletterRepository NewsletterRepository
	}
)

func NewNewsletterService(newsletterRepository NewsletterRepository) NewsletterService {
	return &newsletterService{newsletterRepository: newsletterRepository}
}

func (s *newsletterService) Subscribe(ctx context.Context, req domain.SubscribeRequest) (domain.SubscribeResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return domain.SubscribeResponse{}, domain.ErrInvalidEmail
	}

	exists, err := s.newsletterRepository.EmailExists(ctx, email)
	if err != nil {
		return domain.SubscribeResponse{}, err
	}
	if exists {
		return domain.SubscribeResponse{}, domain.ErrAlreadySubscribed
	}

	if err := s.newsletterRepository.CreateSubscriber(ctx, &entities.Subscriber{Email: email}); err != nil {
		return domain.SubscribeResponse{}, err
	}

	// Welcome mail is best effort; a delivery failure never undoes the
	// subscription.
	go func() {
		err := mailing.SendMail(email, "Welcome to TastyShare",
			"<p>Thanks for subscribing! Fresh recipes will land in your inbox soon.</p>")
		if err != nil {
			log.Errorf("welcome mail to %s failed: %v", email, err)
		}
	}()

	return domain.SubscribeResponse{Email: email}, nil
}
