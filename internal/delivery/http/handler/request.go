package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/planning-docs-service/internal/pkg/validator"
	"github.com/planning-docs-service/internal/usecase/dto"

	apperrors "github.com/planning-docs-service/internal/pkg/errors"
)

// bindJSON декодирует тело запроса в req и валидирует его.
// Ошибки формы тела возвращаются как ErrValidation с деталями по полям.
func bindJSON(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return decodeError(err)
	}
	return validator.Validate(req)
}

func decodeError(err error) error {
	var (
		pointErr *dto.PointListError
		typeErr  *json.UnmarshalTypeError
		fiberErr *fiber.Error
	)

	switch {
	case errors.As(err, &pointErr):
		return apperrors.ErrValidation.WithDetails(map[string]interface{}{
			pointErr.Field(): pointErr.Reason,
		})
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return apperrors.ErrValidation.WithDetails(map[string]interface{}{
			typeErr.Field: "must be " + typeErr.Type.String(),
		})
	case errors.As(err, &fiberErr):
		return apperrors.ErrValidation.WithDetails(map[string]interface{}{
			"body": fiberErr.Message,
		})
	default:
		return apperrors.ErrValidation.WithDetails(map[string]interface{}{
			"body": "malformed JSON",
		})
	}
}

// paramID читает положительный целый path-параметр
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidID.WithDetails(map[string]interface{}{
			name: "must be a positive integer",
		})
	}
	return id, nil
}
