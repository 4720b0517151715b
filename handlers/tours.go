package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travel-cms/model"
	"travel-cms/service"
)

func (h *Handler) GetTours(c *fiber.Ctx) error {
	tours, err := h.svc.Tours.List(c.UserContext(), c.Query("category"), c.Query("status"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(tours)
}

func (h *Handler) GetTour(c *fiber.Ctx) error {
	tour, err := h.svc.Tours.Get(c.UserContext(), c.Params("slug"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(tour)
}

func (h *Handler) CreateTour(c *fiber.Ctx) error {
	tour := new(model.Tour)
	if err := c.BodyParser(tour); err != nil {
		return h.badBody(c, err)
	}

	created, err := h.svc.Tours.Create(c.UserContext(), *tour)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) UpdateTour(c *fiber.Ctx) error {
	updated, err := h.svc.Tours.Update(c.UserContext(), c.Params("id"), bodyOnto[model.Tour](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) DeleteTour(c *fiber.Ctx) error {
	if err := h.svc.Tours.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return deleted(c, "Tour")
}

func (h *Handler) GetTourDates(c *fiber.Ctx) error {
	dates, err := h.svc.Tours.UpcomingDates(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dates)
}

func (h *Handler) AddTourDate(c *fiber.Ctx) error {
	in := new(service.DateSlotInput)
	if err := c.BodyParser(in); err != nil {
		return h.badBody(c, err)
	}

	dates, err := h.svc.Tours.AddDate(c.UserContext(), c.Params("id"), *in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dates)
}

func (h *Handler) DeleteTourDate(c *fiber.Ctx) error {
	index, err := paramIndex(c, "index")
	if err != nil {
		return h.fail(c, err)
	}

	dates, err := h.svc.Tours.RemoveDate(c.UserContext(), c.Params("id"), index)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dates)
}
