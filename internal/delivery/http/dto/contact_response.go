package dto

import (
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"

	"github.com/google/uuid"
)

type ContactResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Company *string   `json:"company"`
	Phone   *string   `json:"phone"`
	Status  string    `json:"status"`
	Notes   *string   `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewContactResponse(s repository.ContactSubmission) ContactResponse {
	return ContactResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Subject:   s.Subject,
		Message:   s.Message,
		Company:   s.Company,
		Phone:     s.Phone,
		Status:    s.Status,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewContactResponses(subs []repository.ContactSubmission) []ContactResponse {
	out := make([]ContactResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, NewContactResponse(s))
	}
	return out
}
