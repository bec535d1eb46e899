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

type NewsletterHandler struct {
	uc usecase.NewsletterUsecase
}

func NewNewsletterHandler(uc usecase.NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{uc: uc}
}

func (h *NewsletterHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/newsletter", h.Subscribe)
	r.Delete("/newsletter", h.Unsubscribe)
	r.Post("/joins", h.Join)
}

func (h *NewsletterHandler) Subscribe(c fiber.Ctx) error {
	var in validation.NewsletterInput
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	res, err := h.uc.Subscribe(c.Context(), in)
	if err != nil {
		return mapNewsletterUsecaseError(err)
	}

	data := dto.NewSubscriptionResponse(res.Subscription)
	if res.Reactivated {
		return response.Success(c, fiber.StatusOK, data, "Subscription reactivated successfully")
	}
	return response.Success(c, fiber.StatusCreated, data, "Successfully subscribed to newsletter")
}

// Join is the landing page CTA variant of Subscribe: same storage, friendlier
// wording, and a default source so signups are attributable.
func (h *NewsletterHandler) Join(c fiber.Ctx) error {
	var in validation.NewsletterInput
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if in.Source == nil || *in.Source == "" {
		src := "Home Page CTA"
		in.Source = &src
	}

	res, err := h.uc.Subscribe(c.Context(), in)
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadySubscribed) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Email is already subscribed", nil, err)
		}
		return mapNewsletterUsecaseError(err)
	}

	data := dto.NewSubscriptionResponse(res.Subscription)
	if res.Reactivated {
		return response.Success(c, fiber.StatusOK, data, "Welcome back to Learnify!")
	}
	return response.Success(c, fiber.StatusCreated, data, "Successfully joined Learnify!")
}

func (h *NewsletterHandler) Unsubscribe(c fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Email is required", nil, nil)
	}

	if err := h.uc.Unsubscribe(c.Context(), email); err != nil {
		return mapNewsletterUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, nil, "Successfully unsubscribed from newsletter")
}

func mapNewsletterUsecaseError(err error) error {
	if appErr, ok := validationAppError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrAlreadySubscribed) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Email is already subscribed", nil, err)
	}
	if errors.Is(err, usecase.ErrSubscriptionNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Email not found in subscriptions", nil, err)
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Email is required", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
