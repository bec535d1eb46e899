package response

import "github.com/gofiber/fiber/v3"

// Envelope is the uniform wire shape shared by every endpoint, success or
// failure. Pagination is only present on list responses, Details only on
// validation failures.
type Envelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Pagination any    `json:"pagination,omitempty"`
}

const (
	MessageBadRequest          = "Bad request"
	MessageUnauthorized        = "Unauthorized"
	MessageNotFound            = "Not found"
	MessageValidationFailed    = "Validation failed"
	MessageInternalServerError = "Internal server error"
)

func Success(c fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(Envelope{Success: true, Data: data, Message: message})
}

func List(c fiber.Ctx, data any, pagination any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Data: data, Pagination: pagination})
}

func Error(c fiber.Ctx, status int, message string, details any) error {
	if message == "" {
		message = defaultMessageForStatus(status)
	}
	return c.Status(status).JSON(Envelope{Success: false, Error: message, Details: details})
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageBadRequest
	}
}
