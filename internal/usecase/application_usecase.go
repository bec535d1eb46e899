package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied for this position")
	ErrJobNotAccepting     = errors.New("job is not accepting applications")
)

type ApplicationListParams struct {
	JobID  *uuid.UUID
	Status string

	Page  int
	Limit int
}

// ApplicationStats mirrors the admin dashboard's aggregation: total, a
// status-keyed breakdown, and (only for the unscoped view) the ten most
// applied-to jobs with their latest application time.
type ApplicationStats struct {
	TotalApplications int             `json:"totalApplications"`
	StatusBreakdown   map[string]int  `json:"statusBreakdown"`
	ApplicationsByJob []JobStatsEntry `json:"applicationsByJob"`
}

type JobStatsEntry struct {
	JobID            uuid.UUID `json:"jobId"`
	JobTitle         string    `json:"jobTitle"`
	Department       *string   `json:"department"`
	Type             string    `json:"type"`
	ApplicationCount int       `json:"applicationCount"`
	LastApplication  time.Time `json:"lastApplication"`
}

// JobApplicationsPage is the response of the per-job listing: the job header
// alongside its (paginated) applications.
type JobApplicationsPage struct {
	Job          repository.Job
	Applications []repository.Application
	Pagination   Pagination
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, in validation.JobApplicationInput) (repository.Application, error)
	List(ctx context.Context, params ApplicationListParams) ([]repository.Application, Pagination, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, status string, page, limit int) (JobApplicationsPage, error)
	Get(ctx context.Context, id uuid.UUID) (repository.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, in validation.ApplicationStatusInput) (repository.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, jobID *uuid.UUID) (ApplicationStats, error)
}

type Applications struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	cache  StatsCache
	logger *log.Logger
}

func NewApplicationUsecase(apps repository.ApplicationRepository, jobs repository.JobRepository, cache StatsCache, logger *log.Logger) *Applications {
	return &Applications{apps: apps, jobs: jobs, cache: cache, logger: logger}
}

// Submit runs the full intake sequence: validate, job must exist, job must be
// ACTIVE, no prior application from this email. The duplicate pre-check is a
// fast path for the friendly message; the unique constraint on (job_id, email)
// is what actually holds under concurrent submissions, and a constraint
// rejection maps to the same conflict.
func (u *Applications) Submit(ctx context.Context, in validation.JobApplicationInput) (repository.Application, error) {
	if err := validation.JobApplication(&in); err != nil {
		return repository.Application{}, err
	}

	jobID, err := uuid.Parse(in.JobID)
	if err != nil {
		return repository.Application{}, ErrJobNotFound
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Application{}, ErrJobNotFound
		}
		u.logf("lookup job %s: %v", jobID, err)
		return repository.Application{}, ErrInternal
	}
	if job.Status != repository.JobStatusActive {
		return repository.Application{}, ErrJobNotAccepting
	}

	exists, err := u.apps.ExistsByJobAndEmail(ctx, jobID, in.Email)
	if err != nil {
		u.logf("duplicate pre-check %s/%s: %v", jobID, in.Email, err)
		return repository.Application{}, ErrInternal
	}
	if exists {
		return repository.Application{}, ErrAlreadyApplied
	}

	app := repository.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Resume:      in.Resume,
		Portfolio:   in.Portfolio,
		Linkedin:    in.Linkedin,
		Github:      in.Github,
		Website:     in.Website,
		CoverLetter: in.CoverLetter,
		Experience:  in.Experience,
		Status:      repository.ApplicationStatusPending,
	}
	if err := u.apps.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.Application{}, ErrAlreadyApplied
		}
		u.logf("create application: %v", err)
		return repository.Application{}, ErrInternal
	}

	created, err := u.apps.GetByID(ctx, app.ID)
	if err != nil {
		u.logf("read back application %s: %v", app.ID, err)
		return repository.Application{}, ErrInternal
	}

	u.invalidateStats(ctx)
	return created, nil
}

func (u *Applications) List(ctx context.Context, params ApplicationListParams) ([]repository.Application, Pagination, error) {
	page, limit, offset := normalizePage(params.Page, params.Limit, 10)

	items, total, err := u.apps.List(ctx, repository.ApplicationListFilter{
		JobID:  params.JobID,
		Status: params.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		u.logf("list applications: %v", err)
		return nil, Pagination{}, ErrInternal
	}
	return items, NewPagination(page, limit, total), nil
}

func (u *Applications) ListByJob(ctx context.Context, jobID uuid.UUID, status string, page, limit int) (JobApplicationsPage, error) {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return JobApplicationsPage{}, ErrJobNotFound
		}
		u.logf("lookup job %s: %v", jobID, err)
		return JobApplicationsPage{}, ErrInternal
	}

	p, l, offset := normalizePage(page, limit, 20)
	items, total, err := u.apps.List(ctx, repository.ApplicationListFilter{
		JobID:  &jobID,
		Status: status,
		Limit:  l,
		Offset: offset,
	})
	if err != nil {
		u.logf("list applications for job %s: %v", jobID, err)
		return JobApplicationsPage{}, ErrInternal
	}

	return JobApplicationsPage{
		Job:          job,
		Applications: items,
		Pagination:   NewPagination(p, l, total),
	}, nil
}

func (u *Applications) Get(ctx context.Context, id uuid.UUID) (repository.Application, error) {
	app, err := u.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Application{}, ErrApplicationNotFound
		}
		u.logf("get application %s: %v", id, err)
		return repository.Application{}, ErrInternal
	}
	return app, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, id uuid.UUID, in validation.ApplicationStatusInput) (repository.Application, error) {
	if err := validation.ApplicationStatus(&in); err != nil {
		return repository.Application{}, err
	}

	updated, err := u.apps.UpdateStatus(ctx, id, in.Status, in.Notes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Application{}, ErrApplicationNotFound
		}
		u.logf("update application %s: %v", id, err)
		return repository.Application{}, ErrInternal
	}

	u.invalidateStats(ctx)
	return updated, nil
}

func (u *Applications) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.apps.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrApplicationNotFound
		}
		u.logf("delete application %s: %v", id, err)
		return ErrInternal
	}

	u.invalidateStats(ctx)
	return nil
}

func (u *Applications) Stats(ctx context.Context, jobID *uuid.UUID) (ApplicationStats, error) {
	key := statsCacheKey("")
	if jobID != nil {
		key = statsCacheKey(jobID.String())
	}

	if u.cache != nil {
		var cached ApplicationStats
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	total, err := u.apps.Count(ctx, jobID)
	if err != nil {
		u.logf("count applications: %v", err)
		return ApplicationStats{}, ErrInternal
	}

	breakdown, err := u.apps.CountByStatus(ctx, jobID)
	if err != nil {
		u.logf("status breakdown: %v", err)
		return ApplicationStats{}, ErrInternal
	}

	byJob := make([]JobStatsEntry, 0)
	if jobID == nil {
		top, err := u.apps.TopJobs(ctx, 10)
		if err != nil {
			u.logf("top jobs: %v", err)
			return ApplicationStats{}, ErrInternal
		}
		for _, t := range top {
			byJob = append(byJob, JobStatsEntry{
				JobID:            t.JobID,
				JobTitle:         t.JobTitle,
				Department:       t.Department,
				Type:             t.Type,
				ApplicationCount: t.ApplicationCount,
				LastApplication:  t.LastApplication,
			})
		}
	}

	stats := ApplicationStats{
		TotalApplications: total,
		StatusBreakdown:   breakdown,
		ApplicationsByJob: byJob,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, stats, statsCacheTTL)
	}
	return stats, nil
}

func (u *Applications) invalidateStats(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, statsCachePattern); err != nil {
		u.logf("invalidate stats cache: %v", err)
	}
}

func (u *Applications) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf("[Applications] "+format, args...)
	}
}
