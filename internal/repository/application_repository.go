package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	ApplicationStatusPending     = "PENDING"
	ApplicationStatusReviewed    = "REVIEWED"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusInterviewed = "INTERVIEWED"
	ApplicationStatusAccepted    = "ACCEPTED"
	ApplicationStatusRejected    = "REJECTED"
	ApplicationStatusWithdrawn   = "WITHDRAWN"
)

// JobSummary is the reduced parent-job view projected inline with each
// application. Description is only filled on single-record reads.
type JobSummary struct {
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Department  *string `json:"department"`
	Description string  `json:"description,omitempty"`
}

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	Resume      *string
	Portfolio   *string
	Linkedin    *string
	Github      *string
	Website     *string
	CoverLetter *string
	Experience  *string
	Status      string
	Notes       *string

	Job *JobSummary

	AppliedAt time.Time
	UpdatedAt time.Time
}

type ApplicationListFilter struct {
	JobID  *uuid.UUID
	Status string

	Limit  int
	Offset int
}

// JobApplicationCount is one row of the by-job aggregation: how many
// applications a job has drawn and when the latest one arrived.
type JobApplicationCount struct {
	JobID            uuid.UUID
	JobTitle         string
	Department       *string
	Type             string
	ApplicationCount int
	LastApplication  time.Time
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	List(ctx context.Context, f ApplicationListFilter) ([]Application, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) (Application, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByJobAndEmail(ctx context.Context, jobID uuid.UUID, email string) (bool, error)
	Count(ctx context.Context, jobID *uuid.UUID) (int, error)
	CountByStatus(ctx context.Context, jobID *uuid.UUID) (map[string]int, error)
	TopJobs(ctx context.Context, limit int) ([]JobApplicationCount, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `a.id, a.job_id, a.first_name, a.last_name, a.email, a.phone,
	a.resume, a.portfolio, a.linkedin, a.github, a.website, a.cover_letter, a.experience,
	a.status, a.notes, a.applied_at, a.updated_at, j.title, j.type, j.department`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (id, job_id, first_name, last_name, email, phone,
			resume, portfolio, linkedin, github, website, cover_letter, experience, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		a.ID, a.JobID, a.FirstName, a.LastName, a.Email, a.Phone,
		a.Resume, a.Portfolio, a.Linkedin, a.Github, a.Website, a.CoverLetter, a.Experience,
		a.Status, a.Notes,
	)
	if err != nil {
		if uniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+`, j.description
		 FROM job_applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.id = $1`, id)

	var a Application
	var job JobSummary
	err := row.Scan(
		&a.ID, &a.JobID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
		&a.Resume, &a.Portfolio, &a.Linkedin, &a.Github, &a.Website, &a.CoverLetter, &a.Experience,
		&a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt,
		&job.Title, &job.Type, &job.Department, &job.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	a.Job = &job
	return a, nil
}

func (r *PostgresApplicationRepository) List(ctx context.Context, f ApplicationListFilter) ([]Application, int, error) {
	where, args := buildApplicationWhere(f.JobID, f.Status)

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM job_applications a`+where, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(
		`SELECT %s
		 FROM job_applications a
		 JOIN jobs j ON j.id = a.job_id%s
		 ORDER BY a.applied_at DESC
		 LIMIT $%d OFFSET $%d`, applicationColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var a Application
		var job JobSummary
		err := rows.Scan(
			&a.ID, &a.JobID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
			&a.Resume, &a.Portfolio, &a.Linkedin, &a.Github, &a.Website, &a.CoverLetter, &a.Experience,
			&a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt,
			&job.Title, &job.Type, &job.Department,
		)
		if err != nil {
			return nil, 0, err
		}
		a.Job = &job
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) (Application, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_applications SET status = $2, notes = COALESCE($3, notes), updated_at = now()
		 WHERE id = $1`, id, status, notes)
	if err != nil {
		return Application{}, err
	}
	if affected == 0 {
		return Application{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) ExistsByJobAndEmail(ctx context.Context, jobID uuid.UUID, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_id = $1 AND email = $2)`,
		jobID, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) Count(ctx context.Context, jobID *uuid.UUID) (int, error) {
	where, args := buildApplicationWhere(jobID, "")
	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM job_applications a`+where, args...)
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresApplicationRepository) CountByStatus(ctx context.Context, jobID *uuid.UUID) (map[string]int, error) {
	where, args := buildApplicationWhere(jobID, "")
	rows, err := r.db.Query(ctx,
		`SELECT a.status, COUNT(1) FROM job_applications a`+where+` GROUP BY a.status`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) TopJobs(ctx context.Context, limit int) ([]JobApplicationCount, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT a.job_id, j.title, j.department, j.type, COUNT(1) AS application_count, MAX(a.applied_at)
		 FROM job_applications a
		 JOIN jobs j ON j.id = a.job_id
		 GROUP BY a.job_id, j.title, j.department, j.type
		 ORDER BY application_count DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobApplicationCount, 0, limit)
	for rows.Next() {
		var c JobApplicationCount
		if err := rows.Scan(&c.JobID, &c.JobTitle, &c.Department, &c.Type, &c.ApplicationCount, &c.LastApplication); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func buildApplicationWhere(jobID *uuid.UUID, status string) (string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if jobID != nil {
		args = append(args, *jobID)
		conds = append(conds, fmt.Sprintf("a.job_id = $%d", len(args)))
	}
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("a.status = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
