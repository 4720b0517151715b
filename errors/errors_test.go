package errors

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-cms/model"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		description string
		err         error
		expected    int
	}{
		{"validation", model.Invalid("title is required"), fiber.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("load: %w", model.NotFound("tour")), fiber.StatusNotFound},
		{"duplicate", &model.DuplicateKeyError{Field: "billNo", Value: "7"}, fiber.StatusConflict},
		{"credentials", model.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"fiber error", fiber.ErrUnprocessableEntity, fiber.StatusUnprocessableEntity},
		{"anything else", fmt.Errorf("smtp: connection refused"), fiber.StatusInternalServerError},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, StatusOf(test.err), test.description)
	}
}

func TestRaiseDuplicate(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Raise(c, fmt.Errorf("create bill: %w", &model.DuplicateKeyError{Field: "billNo", Value: "7"}))
	})

	res, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
	assert.JSONEq(t, `{"error":"billNo \"7\" already exists"}`, string(body))
}
