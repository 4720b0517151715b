package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travel-cms/model"
)

func (h *Handler) GetTravells(c *fiber.Ctx) error {
	travells, err := h.svc.Travells.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(travells)
}

func (h *Handler) GetTravell(c *fiber.Ctx) error {
	travell, err := h.svc.Travells.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(travell)
}

func (h *Handler) CreateTravell(c *fiber.Ctx) error {
	travell := new(model.Travell)
	if err := c.BodyParser(travell); err != nil {
		return h.badBody(c, err)
	}

	created, err := h.svc.Travells.Create(c.UserContext(), *travell)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) UpdateTravell(c *fiber.Ctx) error {
	updated, err := h.svc.Travells.Update(c.UserContext(), c.Params("id"), bodyOnto[model.Travell](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) DeleteTravell(c *fiber.Ctx) error {
	if err := h.svc.Travells.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return deleted(c, "Travell")
}

func (h *Handler) GetPricingCards(c *fiber.Ctx) error {
	cards, err := h.svc.Pricing.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(cards)
}

func (h *Handler) GetPricingCard(c *fiber.Ctx) error {
	card, err := h.svc.Pricing.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(card)
}

func (h *Handler) CreatePricingCard(c *fiber.Ctx) error {
	card := new(model.PricingCard)
	if err := c.BodyParser(card); err != nil {
		return h.badBody(c, err)
	}

	created, err := h.svc.Pricing.Create(c.UserContext(), *card)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) UpdatePricingCard(c *fiber.Ctx) error {
	updated, err := h.svc.Pricing.Update(c.UserContext(), c.Params("id"), bodyOnto[model.PricingCard](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) DeletePricingCard(c *fiber.Ctx) error {
	if err := h.svc.Pricing.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return deleted(c, "Pricing card")
}

func (h *Handler) GetHeroImages(c *fiber.Ctx) error {
	images, err := h.svc.HeroImages.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(images)
}

func (h *Handler) CreateHeroImage(c *fiber.Ctx) error {
	image := new(model.HeroImage)
	if err := c.BodyParser(image); err != nil {
		return h.badBody(c, err)
	}

	created, err := h.svc.HeroImages.Create(c.UserContext(), *image)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) UpdateHeroImage(c *fiber.Ctx) error {
	updated, err := h.svc.HeroImages.Update(c.UserContext(), c.Params("id"), bodyOnto[model.HeroImage](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) DeleteHeroImage(c *fiber.Ctx) error {
	if err := h.svc.HeroImages.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return deleted(c, "Image")
}
