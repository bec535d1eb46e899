package handler

import (
	"strconv"
	"strings"

	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/middleware"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func pathUUID(c fiber.Ctx, name string, notFoundMessage string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, notFoundMessage, nil, err)
	}
	return id, nil
}

// queryInt reads an optional integer query parameter; absent or unparsable
// values fall back to zero so the usecase defaults apply.
func queryInt(c fiber.Ctx, name string) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func queryBool(c fiber.Ctx, name string) *bool {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// validationAppError turns a schema violation list into the 400 payload the
// frontend expects: a top-level "Validation failed" plus per-field details.
func validationAppError(err error) (*middleware.AppError, bool) {
	verr, ok := validation.AsError(err)
	if !ok {
		return nil, false
	}
	return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", verr.Violations, err), true
}
