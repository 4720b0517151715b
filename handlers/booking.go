package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travel-cms/model"
	"travel-cms/service"
)

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	bookings, err := h.svc.Bookings.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(bookings)
}

func (h *Handler) GetBooking(c *fiber.Ctx) error {
	booking, err := h.svc.Bookings.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(booking)
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	req := new(service.BookingRequest)
	if err := c.BodyParser(req); err != nil {
		return h.badBody(c, err)
	}

	booking, err := h.svc.Bookings.Create(c.UserContext(), *req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *Handler) UpdateBooking(c *fiber.Ctx) error {
	upd := new(model.BookingUpdate)
	if err := c.BodyParser(upd); err != nil {
		return h.badBody(c, err)
	}

	booking, err := h.svc.Bookings.Update(c.UserContext(), c.Params("id"), *upd)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(booking)
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	if err := h.svc.Bookings.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return deleted(c, "Booking")
}
