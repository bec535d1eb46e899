package handler

import (
	"errors"

	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/dto"
	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/middleware"
	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/response"
	"github.com/Dweirii/Learnify-Landing-Page/internal/usecase"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

func (h *ApplicationsHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/applications", h.Submit)
}

func (h *ApplicationsHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	// Literal segments before the :id wildcard.
	r.Get("/applications/stats", h.Stats)
	r.Get("/applications/job/:jobId", h.ListByJob)
	r.Get("/applications", h.List)
	r.Get("/applications/:id", h.Get)
	r.Put("/applications/:id", h.Update)
	r.Delete("/applications/:id", h.Delete)
}

func (h *ApplicationsHandler) Submit(c fiber.Ctx) error {
	var in validation.JobApplicationInput
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	app, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, dto.NewApplicationResponse(app), "Application submitted successfully")
}

func (h *ApplicationsHandler) List(c fiber.Ctx) error {
	params := usecase.ApplicationListParams{
		Status: c.Query("status"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	if raw := c.Query("jobId"); raw != "" {
		jobID, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job ID", nil, err)
		}
		params.JobID = &jobID
	}

	apps, pagination, err := h.uc.List(c.Context(), params)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.List(c, dto.NewApplicationResponses(apps), pagination)
}

func (h *ApplicationsHandler) ListByJob(c fiber.Ctx) error {
	jobID, err := pathUUID(c, "jobId", "Job not found")
	if err != nil {
		return err
	}

	page, err := h.uc.ListByJob(c.Context(), jobID, c.Query("status"), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	data := map[string]any{
		"job":          dto.NewJobResponse(page.Job),
		"applications": dto.NewApplicationResponses(page.Applications),
	}
	return c.Status(fiber.StatusOK).JSON(response.Envelope{
		Success:    true,
		Data:       data,
		Pagination: page.Pagination,
	})
}

func (h *ApplicationsHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id", "Application not found")
	if err != nil {
		return err
	}

	app, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewApplicationResponse(app), "")
}

func (h *ApplicationsHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id", "Application not found")
	if err != nil {
		return err
	}

	var in validation.ApplicationStatusInput
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	app, err := h.uc.UpdateStatus(c.Context(), id, in)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewApplicationResponse(app), "Application updated successfully")
}

func (h *ApplicationsHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id", "Application not found")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, nil, "Application deleted successfully")
}

func (h *ApplicationsHandler) Stats(c fiber.Ctx) error {
	var jobID *uuid.UUID
	if raw := c.Query("jobId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job ID", nil, err)
		}
		jobID = &id
	}

	stats, err := h.uc.Stats(c.Context(), jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, stats, "")
}

func mapApplicationUsecaseError(err error) error {
	if appErr, ok := validationAppError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrJobNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}
	if errors.Is(err, usecase.ErrApplicationNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	}
	if errors.Is(err, usecase.ErrAlreadyApplied) {
		return middleware.NewAppError(fiber.StatusBadRequest, "You have already applied for this position", nil, err)
	}
	if errors.Is(err, usecase.ErrJobNotAccepting) {
		return middleware.NewAppError(fiber.StatusBadRequest, "This job is no longer accepting applications", nil, err)
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
