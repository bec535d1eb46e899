package dto

import (
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"

	"github.com/google/uuid"
)

type JobSummaryResponse struct {
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Department  *string `json:"department"`
	Description string  `json:"description,omitempty"`
}

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"jobId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Resume      *string   `json:"resume"`
	Portfolio   *string   `json:"portfolio"`
	Linkedin    *string   `json:"linkedin"`
	Github      *string   `json:"github"`
	Website     *string   `json:"website"`
	CoverLetter *string   `json:"coverLetter"`
	Experience  *string   `json:"experience"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`

	Job *JobSummaryResponse `json:"job,omitempty"`

	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewApplicationResponse(a repository.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Phone:       a.Phone,
		Resume:      a.Resume,
		Portfolio:   a.Portfolio,
		Linkedin:    a.Linkedin,
		Github:      a.Github,
		Website:     a.Website,
		CoverLetter: a.CoverLetter,
		Experience:  a.Experience,
		Status:      a.Status,
		Notes:       a.Notes,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Job != nil {
		resp.Job = &JobSummaryResponse{
			Title:       a.Job.Title,
			Type:        a.Job.Type,
			Department:  a.Job.Department,
			Description: a.Job.Description,
		}
	}
	return resp
}

func NewApplicationResponses(apps []repository.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
