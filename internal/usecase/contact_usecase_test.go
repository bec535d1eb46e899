package usecase

import (
	"context"
	"testing"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"
)

type mockContactRepo struct {
	created    *repository.ContactSubmission
	lastFilter repository.ContactListFilter
	listItems  []repository.ContactSubmission
	listTotal  int
}

func (m *mockContactRepo) Create(_ context.Context, s repository.ContactSubmission) (repository.ContactSubmission, error) {
	m.created = &s
	return s, nil
}

func (m *mockContactRepo) List(_ context.Context, f repository.ContactListFilter) ([]repository.ContactSubmission, int, error) {
	m.lastFilter = f
	return m.listItems, m.listTotal, nil
}

func TestContact_Submit_StartsAsNew(t *testing.T) {
	repo := &mockContactRepo{}
	uc := NewContactUsecase(repo, nil)

	created, err := uc.Submit(context.Background(), validation.ContactInput{
		Name:    "Zaid",
		Email:   "zaid@example.com",
		Subject: "Partnership inquiry",
		Message: "We would love to partner with Learnify.",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != repository.ContactStatusNew {
		t.Fatalf("expected NEW status, got %s", created.Status)
	}
	if repo.created == nil {
		t.Fatalf("expected submission persisted")
	}
}

func TestContact_Submit_Invalid(t *testing.T) {
	uc := NewContactUsecase(&mockContactRepo{}, nil)

	_, err := uc.Submit(context.Background(), validation.ContactInput{Email: "zaid@example.com"})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestContact_List_StatusPassthrough(t *testing.T) {
	repo := &mockContactRepo{listTotal: 7}
	uc := NewContactUsecase(repo, nil)

	_, p, err := uc.List(context.Background(), ContactListParams{Status: repository.ContactStatusNew, Page: 1, Limit: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.Status != repository.ContactStatusNew {
		t.Fatalf("expected status filter, got %q", repo.lastFilter.Status)
	}
	if p.Pages != 2 {
		t.Fatalf("expected 2 pages for 7/5, got %d", p.Pages)
	}
}
