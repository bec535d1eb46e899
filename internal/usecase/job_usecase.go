package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type JobListParams struct {
	Type       string
	Location   string
	Department string
	Remote     *bool

	Page  int
	Limit int
}

type JobUsecase interface {
	// ListPublic only ever returns ACTIVE jobs, regardless of other filters.
	ListPublic(ctx context.Context, params JobListParams) ([]repository.Job, Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (repository.Job, error)
	Create(ctx context.Context, in validation.JobInput) (repository.Job, error)
	Update(ctx context.Context, id uuid.UUID, in validation.JobInput) (repository.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Jobs struct {
	jobs   repository.JobRepository
	logger *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, logger: logger}
}

func (u *Jobs) ListPublic(ctx context.Context, params JobListParams) ([]repository.Job, Pagination, error) {
	page, limit, offset := normalizePage(params.Page, params.Limit, 10)

	items, total, err := u.jobs.List(ctx, repository.JobListFilter{
		Status:     repository.JobStatusActive,
		Type:       params.Type,
		Location:   params.Location,
		Department: params.Department,
		Remote:     params.Remote,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		u.logf("list jobs: %v", err)
		return nil, Pagination{}, ErrInternal
	}

	return items, NewPagination(page, limit, total), nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (repository.Job, error) {
	job, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Job{}, ErrJobNotFound
		}
		u.logf("get job %s: %v", id, err)
		return repository.Job{}, ErrInternal
	}
	return job, nil
}

func (u *Jobs) Create(ctx context.Context, in validation.JobInput) (repository.Job, error) {
	if err := validation.Job(&in); err != nil {
		return repository.Job{}, err
	}

	job := jobFromInput(uuid.New(), in)
	if err := u.jobs.Create(ctx, job); err != nil {
		u.logf("create job: %v", err)
		return repository.Job{}, ErrInternal
	}

	created, err := u.jobs.GetByID(ctx, job.ID)
	if err != nil {
		u.logf("read back job %s: %v", job.ID, err)
		return repository.Job{}, ErrInternal
	}
	return created, nil
}

func (u *Jobs) Update(ctx context.Context, id uuid.UUID, in validation.JobInput) (repository.Job, error) {
	if err := validation.Job(&in); err != nil {
		return repository.Job{}, err
	}

	updated, err := u.jobs.Update(ctx, jobFromInput(id, in))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Job{}, ErrJobNotFound
		}
		u.logf("update job %s: %v", id, err)
		return repository.Job{}, ErrInternal
	}
	return updated, nil
}

func (u *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		u.logf("delete job %s: %v", id, err)
		return ErrInternal
	}
	return nil
}

func (u *Jobs) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf("[Jobs] "+format, args...)
	}
}

func jobFromInput(id uuid.UUID, in validation.JobInput) repository.Job {
	return repository.Job{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     in.Location,
		Type:         in.Type,
		Status:       in.Status,
		SalaryMin:    in.SalaryMin,
		SalaryMax:    in.SalaryMax,
		Currency:     in.Currency,
		Experience:   in.Experience,
		Department:   in.Department,
		IsRemote:     in.IsRemote,
		Benefits:     in.Benefits,
		Skills:       in.Skills,
	}
}
