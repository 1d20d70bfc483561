package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/poi-catalog/internal/delivery/http/middleware"
	"github.com/poi-catalog/internal/domain"
	"github.com/poi-catalog/internal/pkg/utils"
)

type stubVerifier struct {
	identity *domain.Identity
	err      error
}

func (s *stubVerifier) Verify(token string) (*domain.Identity, error) {
	return s.identity, s.err
}

func newAuthApp(verifier middleware.TokenVerifier) *fiber.App {
	app := fiber.New()
	app.Use(middleware.Auth(verifier, zap.NewNop()))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, fiber.StatusOK, fiber.Map{
			"subject": c.Locals(middleware.LocalSubjectID),
			"email":   c.Locals(middleware.LocalEmail),
		})
	})
	return app
}

func decodeError(t *testing.T, resp *http.Response) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestAuth_MissingHeader(t *testing.T) {
	app := newAuthApp(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeError(t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestAuth_NonBearerScheme(t *testing.T) {
	app := newAuthApp(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
}

func TestAuth_RejectedToken(t *testing.T) {
	app := newAuthApp(&stubVerifier{err: fmt.Errorf("invalid token")})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer bad-token")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestAuth_ValidToken(t *testing.T) {
	app := newAuthApp(&stubVerifier{identity: &domain.Identity{
		SubjectID: "user_42",
		Email:     "jordi@example.com",
	}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Subject string `json:"subject"`
			Email   string `json:"email"`
		} `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "user_42", body.Data.Subject)
	assert.Equal(t, "jordi@example.com", body.Data.Email)
}
