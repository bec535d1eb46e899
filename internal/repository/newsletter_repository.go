package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	UserTypeLearner  = "LEARNER"
	UserTypeStreamer = "STREAMER"
)

type Subscription struct {
	ID       uuid.UUID
	Email    string
	IsActive bool
	Name     *string
	UserType string
	Skills   []string
	Source   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewsletterRepository interface {
	GetByEmail(ctx context.Context, email string) (Subscription, error)
	Create(ctx context.Context, s Subscription) error
	// Reactivate flips an inactive subscription back on in place, refreshing
	// the mutable fields from the new request. Unsubscribing never deletes the
	// row, so reactivation is an update keyed by email.
	Reactivate(ctx context.Context, s Subscription) (Subscription, error)
	Deactivate(ctx context.Context, email string) error
}

type PostgresNewsletterRepository struct {
	db database.DB
}

func NewPostgresNewsletterRepository(db database.DB) *PostgresNewsletterRepository {
	return &PostgresNewsletterRepository{db: db}
}

const subscriptionColumns = `id, email, is_active, name, user_type, skills, source, created_at, updated_at`

func (r *PostgresNewsletterRepository) GetByEmail(ctx context.Context, email string) (Subscription, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+subscriptionColumns+` FROM newsletter_subscriptions WHERE email = $1`, email)
	return scanSubscription(row)
}

func (r *PostgresNewsletterRepository) Create(ctx context.Context, s Subscription) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO newsletter_subscriptions (id, email, is_active, name, user_type, skills, source)
		 VALUES ($1, $2, TRUE, $3, $4, $5, $6)`,
		s.ID, s.Email, s.Name, s.UserType, s.Skills, s.Source,
	)
	if err != nil {
		if uniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostgresNewsletterRepository) Reactivate(ctx context.Context, s Subscription) (Subscription, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE newsletter_subscriptions
		 SET is_active = TRUE, name = $2, user_type = $3, skills = $4, source = $5, updated_at = now()
		 WHERE email = $1
		 RETURNING `+subscriptionColumns,
		s.Email, s.Name, s.UserType, s.Skills, s.Source,
	)
	return scanSubscription(row)
}

func (r *PostgresNewsletterRepository) Deactivate(ctx context.Context, email string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE newsletter_subscriptions SET is_active = FALSE, updated_at = now() WHERE email = $1`,
		email)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSubscription(row database.Row) (Subscription, error) {
	var s Subscription
	err := row.Scan(&s.ID, &s.Email, &s.IsActive, &s.Name, &s.UserType, &s.Skills, &s.Source,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, err
	}
	return s, nil
}
