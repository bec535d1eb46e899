package usecase

import (
	"context"
	"log"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/google/uuid"
)

type ContactListParams struct {
	Status string

	Page  int
	Limit int
}

type ContactUsecase interface {
	Submit(ctx context.Context, in validation.ContactInput) (repository.ContactSubmission, error)
	List(ctx context.Context, params ContactListParams) ([]repository.ContactSubmission, Pagination, error)
}

type Contact struct {
	contacts repository.ContactRepository
	logger   *log.Logger
}

func NewContactUsecase(contacts repository.ContactRepository, logger *log.Logger) *Contact {
	return &Contact{contacts: contacts, logger: logger}
}

func (u *Contact) Submit(ctx context.Context, in validation.ContactInput) (repository.ContactSubmission, error) {
	if err := validation.Contact(&in); err != nil {
		return repository.ContactSubmission{}, err
	}

	created, err := u.contacts.Create(ctx, repository.ContactSubmission{
		ID:      uuid.New(),
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Company: in.Company,
		Phone:   in.Phone,
		Status:  repository.ContactStatusNew,
	})
	if err != nil {
		u.logf("create contact submission: %v", err)
		return repository.ContactSubmission{}, ErrInternal
	}
	return created, nil
}

func (u *Contact) List(ctx context.Context, params ContactListParams) ([]repository.ContactSubmission, Pagination, error) {
	page, limit, offset := normalizePage(params.Page, params.Limit, 10)

	items, total, err := u.contacts.List(ctx, repository.ContactListFilter{
		Status: params.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		u.logf("list contact submissions: %v", err)
		return nil, Pagination{}, ErrInternal
	}
	return items, NewPagination(page, limit, total), nil
}

func (u *Contact) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf("[Contact] "+format, args...)
	}
}
