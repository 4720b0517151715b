package middleware

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/wb-go/wbf/logger"

	"travel-cms/errors"
)

const panickedKey = "panicked"

// Recover turns a panic in a later handler into a logged 500. The panic
// value never reaches the client.
func Recover(log logger.Logger) fiber.Handler {
	inner := recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.LogAttrs(c.UserContext(), logger.ErrorLevel, "panic recovered",
				logger.Any("error", e),
				logger.String("stack", string(debug.Stack())),
				logger.String("method", c.Method()),
				logger.String("path", c.Path()),
			)
			c.Locals(panickedKey, true)
		},
	})

	return func(c *fiber.Ctx) error {
		err := inner(c)
		if err != nil && c.Locals(panickedKey) == true {
			return errors.RaiseInternalServerError(c, "internal server error")
		}
		return err
	}
}
