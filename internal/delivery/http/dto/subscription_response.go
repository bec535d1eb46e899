package dto

import (
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"

	"github.com/google/uuid"
)

type SubscriptionResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	IsActive bool      `json:"isActive"`
	Name     *string   `json:"name"`
	UserType string    `json:"userType"`
	Skills   []string  `json:"skills"`
	Source   *string   `json:"source"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewSubscriptionResponse(s repository.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        s.ID,
		Email:     s.Email,
		IsActive:  s.IsActive,
		Name:      s.Name,
		UserType:  s.UserType,
		Skills:    emptyIfNil(s.Skills),
		Source:    s.Source,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
