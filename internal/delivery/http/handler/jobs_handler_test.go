package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/middleware"
	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/usecase"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type mockJobUC struct {
	job        repository.Job
	getErr     error
	listParams usecase.JobListParams
}

func (m *mockJobUC) ListPublic(_ context.Context, params usecase.JobListParams) ([]repository.Job, usecase.Pagination, error) {
	m.listParams = params
	return []repository.Job{}, usecase.NewPagination(1, 10, 0), nil
}

func (m *mockJobUC) Get(context.Context, uuid.UUID) (repository.Job, error) {
	return m.job, m.getErr
}

func (m *mockJobUC) Create(_ context.Context, in validation.JobInput) (repository.Job, error) {
	if err := validation.Job(&in); err != nil {
		return repository.Job{}, err
	}
	return m.job, nil
}

func (m *mockJobUC) Update(context.Context, uuid.UUID, validation.JobInput) (repository.Job, error) {
	return m.job, nil
}

func (m *mockJobUC) Delete(context.Context, uuid.UUID) error { return nil }

func newJobsTestApp(uc *mockJobUC) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	h := NewJobsHandler(uc)
	api := app.Group("/api")
	h.RegisterPublicRoutes(api)
	h.RegisterAdminRoutes(api)
	return app
}

func TestJobsHandler_Get_MalformedIDIsNotFound(t *testing.T) {
	app := newJobsTestApp(&mockJobUC{})

	resp, env := doJSON(t, app, http.MethodGet, "/api/jobs/not-a-uuid", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if env.Error != "Job not found" {
		t.Fatalf("unexpected error: %s", env.Error)
	}
}

func TestJobsHandler_Get_NotFound(t *testing.T) {
	app := newJobsTestApp(&mockJobUC{getErr: usecase.ErrJobNotFound})

	resp, env := doJSON(t, app, http.MethodGet, "/api/jobs/"+uuid.NewString(), "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if env.Error != "Job not found" {
		t.Fatalf("unexpected error: %s", env.Error)
	}
}

func TestJobsHandler_List_PassesFilters(t *testing.T) {
	uc := &mockJobUC{}
	app := newJobsTestApp(uc)

	resp, env := doJSON(t, app, http.MethodGet, "/api/jobs?type=FULL_TIME&remote=true&page=2&limit=5", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	if uc.listParams.Type != "FULL_TIME" {
		t.Fatalf("expected type filter, got %q", uc.listParams.Type)
	}
	if uc.listParams.Remote == nil || !*uc.listParams.Remote {
		t.Fatalf("expected remote filter")
	}
	if uc.listParams.Page != 2 || uc.listParams.Limit != 5 {
		t.Fatalf("expected page=2 limit=5, got page=%d limit=%d", uc.listParams.Page, uc.listParams.Limit)
	}
}

func TestJobsHandler_Create_ValidationDetails(t *testing.T) {
	app := newJobsTestApp(&mockJobUC{})

	resp, env := doJSON(t, app, http.MethodPost, "/api/jobs", `{"title":"Backend Engineer"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if env.Error != "Validation failed" {
		t.Fatalf("unexpected error: %s", env.Error)
	}
}
