package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Login(c *fiber.Ctx) error {
	type Credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var creds = new(Credentials)
	if err := c.BodyParser(creds); err != nil {
		return h.badBody(c, err)
	}

	token, err := h.svc.Auth.Login(creds.Username, creds.Password)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}
