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
	JobStatusActive   = "ACTIVE"
	JobStatusInactive = "INACTIVE"
	JobStatusClosed   = "CLOSED"
	JobStatusDraft    = "DRAFT"
)

type Job struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Requirements []string
	Location     *string
	Type         string
	Status       string
	SalaryMin    *int
	SalaryMax    *int
	Currency     string
	Experience   *string
	Department   *string
	IsRemote     bool
	Benefits     []string
	Skills       []string

	ApplicationCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// JobListFilter is the typed form of the list endpoint's query parameters.
// Zero values mean "no filter"; Status is forced to ACTIVE by the public
// listing usecase before it reaches this layer.
type JobListFilter struct {
	Status     string
	Type       string
	Location   string
	Department string
	Remote     *bool

	Limit  int
	Offset int
}

type JobRepository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, f JobListFilter) ([]Job, int, error)
	Update(ctx context.Context, j Job) (Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, description, requirements, location, type, status,
	salary_min, salary_max, currency, experience, department, is_remote,
	benefits, skills, created_at, updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, requirements, location, type, status,
			salary_min, salary_max, currency, experience, department, is_remote, benefits, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		j.ID, j.Title, j.Description, j.Requirements, j.Location, j.Type, j.Status,
		j.SalaryMin, j.SalaryMax, j.Currency, j.Experience, j.Department, j.IsRemote,
		j.Benefits, j.Skills,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s,
			(SELECT COUNT(1) FROM job_applications a WHERE a.job_id = jobs.id)
		 FROM jobs WHERE id = $1`, jobColumns), id)
	return scanJobWithCount(row)
}

func (r *PostgresJobRepository) List(ctx context.Context, f JobListFilter) ([]Job, int, error) {
	where, args := buildJobWhere(f)

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs`+where, args...)
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
		`SELECT %s,
			(SELECT COUNT(1) FROM job_applications a WHERE a.job_id = jobs.id)
		 FROM jobs%s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`, jobColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		j, err := scanJobWithCount(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j Job) (Job, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(
		`UPDATE jobs SET title = $2, description = $3, requirements = $4, location = $5,
			type = $6, status = $7, salary_min = $8, salary_max = $9, currency = $10,
			experience = $11, department = $12, is_remote = $13, benefits = $14,
			skills = $15, updated_at = now()
		 WHERE id = $1
		 RETURNING %s,
			(SELECT COUNT(1) FROM job_applications a WHERE a.job_id = jobs.id)`, jobColumns),
		j.ID, j.Title, j.Description, j.Requirements, j.Location, j.Type, j.Status,
		j.SalaryMin, j.SalaryMax, j.Currency, j.Experience, j.Department, j.IsRemote,
		j.Benefits, j.Skills,
	)
	return scanJobWithCount(row)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func buildJobWhere(f JobListFilter) (string, []any) {
	conds := make([]string, 0, 5)
	args := make([]any, 0, 5)

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if f.Location != "" {
		args = append(args, "%"+f.Location+"%")
		conds = append(conds, fmt.Sprintf("(location ILIKE $%d OR is_remote = TRUE)", len(args)))
	}
	if f.Department != "" {
		args = append(args, "%"+f.Department+"%")
		conds = append(conds, fmt.Sprintf("department ILIKE $%d", len(args)))
	}
	if f.Remote != nil {
		args = append(args, *f.Remote)
		conds = append(conds, fmt.Sprintf("is_remote = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanJobWithCount(row database.Row) (Job, error) {
	var j Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Location, &j.Type, &j.Status,
		&j.SalaryMin, &j.SalaryMax, &j.Currency, &j.Experience, &j.Department, &j.IsRemote,
		&j.Benefits, &j.Skills, &j.CreatedAt, &j.UpdatedAt, &j.ApplicationCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return j, nil
}
