package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travel-cms/model"
)

func (h *Handler) GetBills(c *fiber.Ctx) error {
	bills, err := h.svc.Bills.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(bills)
}

func (h *Handler) GetBill(c *fiber.Ctx) error {
	bill, err := h.svc.Bills.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(bill)
}

func (h *Handler) GetNextBillNo(c *fiber.Ctx) error {
	next, err := h.svc.Bills.NextNumber(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"billNo": next})
}

func (h *Handler) CreateBill(c *fiber.Ctx) error {
	bill := new(model.Bill)
	if err := c.BodyParser(bill); err != nil {
		return h.badBody(c, err)
	}

	created, err := h.svc.Bills.Create(c.UserContext(), *bill)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) UpdateBill(c *fiber.Ctx) error {
	updated, err := h.svc.Bills.Update(c.UserContext(), c.Params("id"), bodyOnto[model.Bill](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) DeleteBill(c *fiber.Ctx) error {
	if err := h.svc.Bills.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return deleted(c, "Bill")
}

func (h *Handler) SendBillEmail(c *fiber.Ctx) error {
	to, err := h.svc.Bills.SendEmail(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Bill sent successfully to " + to})
}

func (h *Handler) GetTourBills(c *fiber.Ctx) error {
	bills, err := h.svc.TourBills.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(bills)
}

func (h *Handler) GetTourBill(c *fiber.Ctx) error {
	bill, err := h.svc.TourBills.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(bill)
}

func (h *Handler) GetNextTourBillNo(c *fiber.Ctx) error {
	next, err := h.svc.TourBills.NextNumber(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"billNo": next})
}

func (h *Handler) CreateTourBill(c *fiber.Ctx) error {
	bill := new(model.TourBill)
	if err := c.BodyParser(bill); err != nil {
		return h.badBody(c, err)
	}

	created, err := h.svc.TourBills.Create(c.UserContext(), *bill)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) UpdateTourBill(c *fiber.Ctx) error {
	updated, err := h.svc.TourBills.Update(c.UserContext(), c.Params("id"), bodyOnto[model.TourBill](c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) DeleteTourBill(c *fiber.Ctx) error {
	if err := h.svc.TourBills.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return deleted(c, "Tour bill")
}

func (h *Handler) SendTourBillEmail(c *fiber.Ctx) error {
	to, err := h.svc.TourBills.SendEmail(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Tour bill sent successfully to " + to})
}
