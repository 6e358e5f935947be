package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/planning-docs-service/internal/pkg/errors"
	"github.com/planning-docs-service/internal/usecase/dto"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendJSON отвечает 200 с телом без обёртки
func SendJSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// SendMessage отвечает 200 {"message": ...}
func SendMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.MessageResponse{Message: message})
}

// SendError maps AppError to its status; anything else is a 503.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(errors.ErrInternalServer.StatusCode).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
