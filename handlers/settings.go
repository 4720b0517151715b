package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.svc.Settings.Get(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(settings)
}

func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	body := map[string]interface{}{}
	if err := c.BodyParser(&body); err != nil {
		return h.badBody(c, err)
	}

	settings, err := h.svc.Settings.Update(c.UserContext(), body)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(settings)
}
