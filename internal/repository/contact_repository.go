package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/database"

	"github.com/google/uuid"
)

const (
	ContactStatusNew        = "NEW"
	ContactStatusInProgress = "IN_PROGRESS"
	ContactStatusResolved   = "RESOLVED"
	ContactStatusClosed     = "CLOSED"
)

type ContactSubmission struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Subject string
	Message string
	Company *string
	Phone   *string
	Status  string
	Notes   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ContactListFilter struct {
	Status string

	Limit  int
	Offset int
}

type ContactRepository interface {
	Create(ctx context.Context, s ContactSubmission) (ContactSubmission, error)
	List(ctx context.Context, f ContactListFilter) ([]ContactSubmission, int, error)
}

type PostgresContactRepository struct {
	db database.DB
}

func NewPostgresContactRepository(db database.DB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

func (r *PostgresContactRepository) Create(ctx context.Context, s ContactSubmission) (ContactSubmission, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO contact_submissions (id, name, email, subject, message, company, phone, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		s.ID, s.Name, s.Email, s.Subject, s.Message, s.Company, s.Phone, s.Status,
	)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return ContactSubmission{}, err
	}
	return s, nil
}

func (r *PostgresContactRepository) List(ctx context.Context, f ContactListFilter) ([]ContactSubmission, int, error) {
	where := ""
	args := make([]any, 0, 1)
	if f.Status != "" {
		args = append(args, f.Status)
		where = " WHERE status = $1"
	}

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM contact_submissions`+where, args...)
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
		`SELECT id, name, email, subject, message, company, phone, status, notes, created_at, updated_at
		 FROM contact_submissions%s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]ContactSubmission, 0)
	for rows.Next() {
		var s ContactSubmission
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Company,
			&s.Phone, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
