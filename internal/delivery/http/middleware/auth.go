package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/poi-catalog/internal/domain"
	"github.com/poi-catalog/internal/pkg/errors"
	"github.com/poi-catalog/internal/pkg/utils"
	"go.uber.org/zap"
)

// TokenVerifier resolves a bearer token to an identity or fails.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// Locals keys set by Auth for downstream handlers.
const (
	LocalSubjectID = "subject_id"
	LocalEmail     = "email"
)

// Auth - middleware аутентификации. Запросы без валидного Bearer-токена
// отклоняются до доменной логики; health и /v1/auth навешиваются вне этой
// цепочки и остаются открытыми.
func Auth(verifier TokenVerifier, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			logger.Warn("Missing or malformed Authorization header", zap.String("path", c.Path()))
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		token := strings.TrimPrefix(header, "Bearer ")
		identity, err := verifier.Verify(token)
		if err != nil {
			logger.Warn("Token rejected", zap.String("path", c.Path()))
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		c.Locals(LocalSubjectID, identity.SubjectID)
		c.Locals(LocalEmail, identity.Email)
		return c.Next()
	}
}
