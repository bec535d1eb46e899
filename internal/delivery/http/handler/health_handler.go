package handler

import (
	"context"
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/database"
	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	dbStatus := "ok"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			dbStatus = "unreachable"
		}
	}

	data := map[string]any{
		"status":   "ok",
		"database": dbStatus,
	}
	status := fiber.StatusOK
	if dbStatus != "ok" {
		data["status"] = "degraded"
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, data, "")
}
