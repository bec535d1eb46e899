package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/google/uuid"
)

type mockNewsletterRepo struct {
	existing    *repository.Subscription
	getErr      error
	createErr   error
	created     *repository.Subscription
	reactivated *repository.Subscription
	deactivated []string
	deactErr    error
}

func (m *mockNewsletterRepo) GetByEmail(_ context.Context, email string) (repository.Subscription, error) {
	if m.created != nil {
		return *m.created, nil
	}
	if m.existing != nil {
		return *m.existing, nil
	}
	if m.getErr != nil {
		return repository.Subscription{}, m.getErr
	}
	return repository.Subscription{}, repository.ErrNotFound
}

func (m *mockNewsletterRepo) Create(_ context.Context, s repository.Subscription) error {
	if m.createErr != nil {
		return m.createErr
	}
	s.IsActive = true
	m.created = &s
	return nil
}

func (m *mockNewsletterRepo) Reactivate(_ context.Context, s repository.Subscription) (repository.Subscription, error) {
	s.IsActive = true
	m.reactivated = &s
	return s, nil
}

func (m *mockNewsletterRepo) Deactivate(_ context.Context, email string) error {
	if m.deactErr != nil {
		return m.deactErr
	}
	m.deactivated = append(m.deactivated, email)
	return nil
}

func TestNewsletter_Subscribe_New(t *testing.T) {
	repo := &mockNewsletterRepo{}
	uc := NewNewsletterUsecase(repo, nil)

	res, err := uc.Subscribe(context.Background(), validation.NewsletterInput{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Reactivated {
		t.Fatalf("expected fresh subscription")
	}
	if !res.Subscription.IsActive {
		t.Fatalf("expected active subscription")
	}
	if res.Subscription.UserType != repository.UserTypeLearner {
		t.Fatalf("expected default LEARNER, got %s", res.Subscription.UserType)
	}
}

func TestNewsletter_Subscribe_ActiveConflict(t *testing.T) {
	repo := &mockNewsletterRepo{existing: &repository.Subscription{
		ID: uuid.New(), Email: "taken@example.com", IsActive: true,
	}}
	uc := NewNewsletterUsecase(repo, nil)

	_, err := uc.Subscribe(context.Background(), validation.NewsletterInput{Email: "taken@example.com"})
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestNewsletter_Subscribe_Reactivates(t *testing.T) {
	repo := &mockNewsletterRepo{existing: &repository.Subscription{
		ID: uuid.New(), Email: "back@example.com", IsActive: false,
	}}
	uc := NewNewsletterUsecase(repo, nil)

	res, err := uc.Subscribe(context.Background(), validation.NewsletterInput{
		Email:    "back@example.com",
		UserType: "streamer",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Reactivated {
		t.Fatalf("expected reactivation")
	}
	if repo.reactivated == nil || repo.reactivated.UserType != repository.UserTypeStreamer {
		t.Fatalf("expected refreshed user type on reactivation")
	}
}

func TestNewsletter_Subscribe_LostRaceMapsToConflict(t *testing.T) {
	repo := &mockNewsletterRepo{createErr: repository.ErrDuplicate}
	uc := NewNewsletterUsecase(repo, nil)

	_, err := uc.Subscribe(context.Background(), validation.NewsletterInput{Email: "race@example.com"})
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestNewsletter_Subscribe_InvalidEmail(t *testing.T) {
	uc := NewNewsletterUsecase(&mockNewsletterRepo{}, nil)

	_, err := uc.Subscribe(context.Background(), validation.NewsletterInput{Email: "not-an-email"})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNewsletter_Unsubscribe(t *testing.T) {
	repo := &mockNewsletterRepo{}
	uc := NewNewsletterUsecase(repo, nil)

	if err := uc.Unsubscribe(context.Background(), " gone@example.com "); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.deactivated) != 1 || repo.deactivated[0] != "gone@example.com" {
		t.Fatalf("expected trimmed email deactivation, got %v", repo.deactivated)
	}
}

func TestNewsletter_Unsubscribe_NotFound(t *testing.T) {
	repo := &mockNewsletterRepo{deactErr: repository.ErrNotFound}
	uc := NewNewsletterUsecase(repo, nil)

	err := uc.Unsubscribe(context.Background(), "missing@example.com")
	if !errors.Is(err, ErrSubscriptionNotFound) {
		t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
	}
}

func TestNewsletter_Unsubscribe_EmptyEmail(t *testing.T) {
	uc := NewNewsletterUsecase(&mockNewsletterRepo{}, nil)

	if err := uc.Unsubscribe(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
