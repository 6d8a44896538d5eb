package models_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipebox/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, models.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return models.RespondWithError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, testErr)
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return resp.StatusCode, body
}

func TestRespondWithErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{models.NewValidationError("bad input"), fiber.StatusBadRequest, models.CodeValidation},
		{models.NewNotFoundError("recipe", "rec-1"), fiber.StatusNotFound, models.CodeNotFound},
		{models.NewConflictError("already there"), fiber.StatusConflict, models.CodeConflict},
		{models.NewForbiddenError("not yours"), fiber.StatusForbidden, models.CodeForbidden},
		{models.NewUnauthorizedError("no token"), fiber.StatusUnauthorized, models.CodeUnauthorized},
	}
	for _, tc := range cases {
		status, body := respond(t, tc.err)
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.code, body.Code)
	}
}

func TestRespondWithErrorInternal(t *testing.T) {
	status, body := respond(t, models.NewInternalError(errors.New("render failed")))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, models.CodeInternal, body.Code)
	assert.Equal(t, "internal server error", body.Error)
	assert.Equal(t, "render failed", body.Details)
}

func TestRespondWithErrorPlainError(t *testing.T) {
	// An untyped error never leaks its message as the headline.
	status, body := respond(t, errors.New("sql: connection reset"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, models.CodeInternal, body.Code)
	assert.Equal(t, "internal server error", body.Error)
	assert.Equal(t, "sql: connection reset", body.Details)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, models.IsNotFound(models.NewNotFoundError("recipe", "rec-1")))
	assert.False(t, models.IsNotFound(models.NewConflictError("taken")))
	assert.False(t, models.IsNotFound(errors.New("connection refused")))
	assert.False(t, models.IsNotFound(nil))
}
