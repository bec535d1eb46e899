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

type ContactHandler struct {
	uc usecase.ContactUsecase
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/contact", h.Submit)
}

func (h *ContactHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/contact", h.List)
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var in validation.ContactInput
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	submission, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return mapContactUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, dto.NewContactResponse(submission), "Message sent successfully")
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	submissions, pagination, err := h.uc.List(c.Context(), usecase.ContactListParams{
		Status: c.Query("status"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return mapContactUsecaseError(err)
	}

	return response.List(c, dto.NewContactResponses(submissions), pagination)
}

func mapContactUsecaseError(err error) error {
	if appErr, ok := validationAppError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
