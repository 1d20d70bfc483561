package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/poi-catalog/internal/pkg/utils"
)

// AuthHandler - открытые информационные эндпоинты аутентификации. Токены
// выпускает внешний провайдер идентичности; сервис их только проверяет.
type AuthHandler struct{}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login - этот сервис не выпускает токены
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.StatusOK, fiber.Map{
		"message":      "Tokens are issued by the identity provider, not by this service",
		"instructions": "Obtain a token from the identity provider and send it as a Bearer credential",
	})
}

// Info - описание схемы аутентификации
func (h *AuthHandler) Info(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.StatusOK, fiber.Map{
		"authMethod":   "Bearer token",
		"tokenType":    "JWT (HMAC-SHA256)",
		"headerFormat": "Authorization: Bearer <token>",
		"claims":       []string{"sub", "email"},
	})
}
