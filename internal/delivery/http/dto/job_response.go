package dto

import (
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Requirements     []string  `json:"requirements"`
	Location         *string   `json:"location"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	SalaryMin        *int      `json:"salaryMin"`
	SalaryMax        *int      `json:"salaryMax"`
	Currency         string    `json:"currency"`
	Experience       *string   `json:"experience"`
	Department       *string   `json:"department"`
	IsRemote         bool      `json:"isRemote"`
	Benefits         []string  `json:"benefits"`
	Skills           []string  `json:"skills"`
	ApplicationCount int       `json:"applicationCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewJobResponse(j repository.Job) JobResponse {
	return JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     emptyIfNil(j.Requirements),
		Location:         j.Location,
		Type:             j.Type,
		Status:           j.Status,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		Currency:         j.Currency,
		Experience:       j.Experience,
		Department:       j.Department,
		IsRemote:         j.IsRemote,
		Benefits:         emptyIfNil(j.Benefits),
		Skills:           emptyIfNil(j.Skills),
		ApplicationCount: j.ApplicationCount,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func NewJobResponses(jobs []repository.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
