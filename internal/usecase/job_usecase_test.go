package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/google/uuid"
)

func TestJobs_ListPublic_ForcesActiveStatus(t *testing.T) {
	remote := true
	repo := &mockJobRepo{listItems: []repository.Job{}, listTotal: 0}
	uc := NewJobUsecase(repo, nil)

	_, _, err := uc.ListPublic(context.Background(), JobListParams{
		Type:   "FULL_TIME",
		Remote: &remote,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.Status != repository.JobStatusActive {
		t.Fatalf("expected forced ACTIVE filter, got %q", repo.lastFilter.Status)
	}
	if repo.lastFilter.Type != "FULL_TIME" {
		t.Fatalf("expected type passthrough, got %q", repo.lastFilter.Type)
	}
	if repo.lastFilter.Remote == nil || !*repo.lastFilter.Remote {
		t.Fatalf("expected remote passthrough")
	}
}

func TestJobs_ListPublic_PaginationMath(t *testing.T) {
	repo := &mockJobRepo{listTotal: 25}
	uc := NewJobUsecase(repo, nil)

	_, p, err := uc.ListPublic(context.Background(), JobListParams{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Page != 3 || p.Limit != 10 || p.Total != 25 || p.Pages != 3 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if repo.lastFilter.Offset != 20 {
		t.Fatalf("expected offset 20, got %d", repo.lastFilter.Offset)
	}
}

func TestJobs_ListPublic_DefaultsOutOfRangePage(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobUsecase(repo, nil)

	_, p, err := uc.ListPublic(context.Background(), JobListParams{Page: -4, Limit: 0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("expected defaults page=1 limit=10, got %+v", p)
	}
	if repo.lastFilter.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", repo.lastFilter.Offset)
	}
}

func TestJobs_Get_NotFound(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{err: repository.ErrNotFound}, nil)

	_, err := uc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobs_Create_AppliesDefaults(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobUsecase(repo, nil)

	in := validation.JobInput{
		Title:        "Backend Engineer",
		Description:  "Build the careers backend.",
		Requirements: []string{"Go"},
		Type:         "FULL_TIME",
	}
	_, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestJobs_Create_RejectsBadType(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{}, nil)

	in := validation.JobInput{
		Title:        "Backend Engineer",
		Description:  "Build the careers backend.",
		Requirements: []string{"Go"},
		Type:         "GIG",
	}
	_, err := uc.Create(context.Background(), in)
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}
