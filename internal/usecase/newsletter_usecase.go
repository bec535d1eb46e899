package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrAlreadySubscribed    = errors.New("email is already subscribed")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscribeResult distinguishes a fresh subscription from a reactivated one
// so the endpoint can pick the right success message.
type SubscribeResult struct {
	Subscription repository.Subscription
	Reactivated  bool
}

type NewsletterUsecase interface {
	Subscribe(ctx context.Context, in validation.NewsletterInput) (SubscribeResult, error)
	Unsubscribe(ctx context.Context, email string) error
}

type Newsletter struct {
	subs   repository.NewsletterRepository
	logger *log.Logger
}

func NewNewsletterUsecase(subs repository.NewsletterRepository, logger *log.Logger) *Newsletter {
	return &Newsletter{subs: subs, logger: logger}
}

// Subscribe branches three ways: no record yet creates one, an active record
// is a conflict, and an inactive record (a previous unsubscribe) reactivates
// in place with the mutable fields refreshed from this request. The unique
// index on email resolves the create/create race; a lost race reads as the
// same conflict the pre-check would have reported.
func (u *Newsletter) Subscribe(ctx context.Context, in validation.NewsletterInput) (SubscribeResult, error) {
	if err := validation.Newsletter(&in); err != nil {
		return SubscribeResult{}, err
	}

	sub := repository.Subscription{
		ID:       uuid.New(),
		Email:    in.Email,
		Name:     in.Name,
		UserType: userTypeFromInput(in.UserType),
		Skills:   in.Skills,
		Source:   in.Source,
	}

	existing, err := u.subs.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		if existing.IsActive {
			return SubscribeResult{}, ErrAlreadySubscribed
		}
		reactivated, err := u.subs.Reactivate(ctx, sub)
		if err != nil {
			u.logf("reactivate %s: %v", in.Email, err)
			return SubscribeResult{}, ErrInternal
		}
		return SubscribeResult{Subscription: reactivated, Reactivated: true}, nil

	case errors.Is(err, repository.ErrNotFound):
		if err := u.subs.Create(ctx, sub); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return SubscribeResult{}, ErrAlreadySubscribed
			}
			u.logf("create subscription %s: %v", in.Email, err)
			return SubscribeResult{}, ErrInternal
		}
		created, err := u.subs.GetByEmail(ctx, in.Email)
		if err != nil {
			u.logf("read back subscription %s: %v", in.Email, err)
			return SubscribeResult{}, ErrInternal
		}
		return SubscribeResult{Subscription: created}, nil

	default:
		u.logf("lookup subscription %s: %v", in.Email, err)
		return SubscribeResult{}, ErrInternal
	}
}

func (u *Newsletter) Unsubscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidInput
	}

	if err := u.subs.Deactivate(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubscriptionNotFound
		}
		u.logf("unsubscribe %s: %v", email, err)
		return ErrInternal
	}
	return nil
}

func (u *Newsletter) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf("[Newsletter] "+format, args...)
	}
}

func userTypeFromInput(t string) string {
	if strings.EqualFold(t, "streamer") {
		return repository.UserTypeStreamer
	}
	return repository.UserTypeLearner
}
