package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/poi-catalog/internal/domain"
	"go.uber.org/zap"
)

// Verifier проверяет токены, выданные внешним провайдером идентичности.
// Сервис токены не выпускает, только валидирует подпись и извлекает
// subject/email.
type Verifier struct {
	secret []byte
	logger *zap.Logger
}

func NewVerifier(secret string, logger *zap.Logger) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		logger: logger,
	}
}

// Verify parses and validates an HMAC-signed token and returns the identity
// carried in its sub/email claims.
func (v *Verifier) Verify(tokenString string) (*domain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		v.logger.Warn("Token verification failed", zap.Error(err))
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	email, _ := claims["email"].(string)

	return &domain.Identity{
		SubjectID: subject,
		Email:     email,
	}, nil
}
