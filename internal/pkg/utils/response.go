package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/poi-catalog/internal/pkg/errors"
)

// SuccessResponse - единый конверт успешного ответа
type SuccessResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// ErrorResponse - единый конверт ошибки
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

func SendSuccess(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(SuccessResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Success:   false,
			Error:     appErr.Message,
			Code:      appErr.Code,
			Timestamp: time.Now().UTC(),
		})
	}

	// Unknown error - return 500
	return c.Status(errors.ErrInternalServer.StatusCode).JSON(ErrorResponse{
		Success:   false,
		Error:     errors.ErrInternalServer.Message,
		Code:      errors.ErrInternalServer.Code,
		Timestamp: time.Now().UTC(),
	})
}
