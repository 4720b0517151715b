package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const RequestIDHeader = fiber.HeaderXRequestID

// RequestID keeps an incoming request id or assigns a new one, and echoes
// it on the response.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: uuid.NewString,
	})
}
