package middleware

import (
	stderrors "errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"travel-cms/metrics"
)

// CountRequests records every request by method, route pattern and status.
func CountRequests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if stderrors.As(err, &fe) {
				status = fe.Code
			} else if status < fiber.StatusBadRequest {
				status = fiber.StatusInternalServerError
			}
		}
		path := "unknown"
		if r := c.Route(); r != nil {
			path = r.Path
		}
		metrics.HTTPRequests.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		return err
	}
}
