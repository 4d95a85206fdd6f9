// error_utils.go
package utils

import (
	"errors"
	"log"

	"Backend-ZAB-Portal/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError maps the service error taxonomy to stable status codes:
// 400 fix your input, 401/403 you may not do this, 404 missing, 500 retry later.
func HandleServiceError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	var serr *models.StoreError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  fiber.StatusBadRequest,
			Message: verr.Error(),
			Field:   verr.Field,
		})
	case errors.Is(err, models.ErrUnauthorized):
		return HandleError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrForbidden):
		return HandleError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return HandleError(c, fiber.StatusNotFound, "Feedback not found or already decided")
	case errors.As(err, &serr):
		log.Println("❌ store error:", serr)
		return HandleError(c, fiber.StatusInternalServerError, "Temporary storage failure, please retry")
	default:
		log.Println("❌ unexpected error:", err)
		return HandleError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
