package handler

import (
	"errors"

	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/dto"
	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/middleware"
	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/response"
	"github.com/Dweirii/Learnify-Landing-Page/internal/usecase"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.List)
	r.Get("/jobs/:id", h.Get)
}

func (h *JobsHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs", h.Create)
	r.Put("/jobs/:id", h.Update)
	r.Delete("/jobs/:id", h.Delete)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	jobs, pagination, err := h.uc.ListPublic(c.Context(), usecase.JobListParams{
		Type:       c.Query("type"),
		Location:   c.Query("location"),
		Department: c.Query("department"),
		Remote:     queryBool(c, "remote"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.List(c, dto.NewJobResponses(jobs), pagination)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id", "Job not found")
	if err != nil {
		return err
	}

	job, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewJobResponse(job), "")
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var in validation.JobInput
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	job, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, dto.NewJobResponse(job), "Job created successfully")
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id", "Job not found")
	if err != nil {
		return err
	}

	var in validation.JobInput
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	job, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewJobResponse(job), "Job updated successfully")
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id", "Job not found")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, nil, "Job deleted successfully")
}

func mapJobUsecaseError(err error) error {
	if appErr, ok := validationAppError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrJobNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
