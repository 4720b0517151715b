package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"travel-cms/errors"
	"travel-cms/metrics"
)

const testSign = "test-sign"

func signed(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testSign))
	require.NoError(t, err)
	return s
}

func TestAuthorize(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", Authorize(testSign), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	tests := []struct {
		description  string
		header       string
		expectedCode int
	}{
		{"no token", "", fiber.StatusBadRequest},
		{"garbage token", "Bearer abc.def.ghi", fiber.StatusUnauthorized},
		{"non admin", "Bearer " + signed(t, "viewer"), fiber.StatusForbidden},
		{"admin", "Bearer " + signed(t, "admin"), fiber.StatusOK},
	}

	for _, test := range tests {
		req := httptest.NewRequest("GET", "/admin", nil)
		if test.header != "" {
			req.Header.Set("Authorization", test.header)
		}
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
	}
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	res, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Len(t, res.Header.Get(RequestIDHeader), 36)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	res, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "given-id", res.Header.Get(RequestIDHeader))
}

func TestCountRequests(t *testing.T) {
	app := fiber.New()
	app.Use(CountRequests())
	app.Get("/things/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })

	counter := metrics.HTTPRequests.WithLabelValues("GET", "/things/:id", "418")
	before := testutil.ToFloat64(counter)

	_, err := app.Test(httptest.NewRequest("GET", "/things/1", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecover(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: errors.Raise})
	app.Use(Recover(log))
	app.Get("/panic", func(c *fiber.Ctx) error { panic("secret connection string") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	tests := []struct {
		description  string
		route        string
		expectedCode int
		expectedBody string
	}{
		{"panic hidden behind 500", "/panic", fiber.StatusInternalServerError, `{"error":"internal server error"}`},
		{"handler error passes through", "/missing", fiber.StatusNotFound, `{"error":"Not Found"}`},
		{"plain success", "/ok", fiber.StatusOK, "ok"},
	}

	for _, test := range tests {
		res, err := app.Test(httptest.NewRequest("GET", test.route, nil), -1)
		require.NoError(t, err)
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
		assert.Equalf(t, test.expectedBody, string(body), test.description)
		assert.NotContainsf(t, string(body), "secret", test.description)
	}
}
