package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wb-go/wbf/logger"

	"travel-cms/errors"
	"travel-cms/media"
	"travel-cms/model"
	"travel-cms/service"
)

type TourSvc interface {
	List(ctx context.Context, category, status string) ([]model.Tour, error)
	Get(ctx context.Context, slugOrID string) (model.Tour, error)
	Create(ctx context.Context, tour model.Tour) (model.Tour, error)
	Update(ctx context.Context, id string, patch func(*model.Tour) error) (model.Tour, error)
	Delete(ctx context.Context, id string) error
	UpcomingDates(ctx context.Context, id string) ([]model.DateSlot, error)
	AddDate(ctx context.Context, id string, in service.DateSlotInput) ([]model.DateSlot, error)
	RemoveDate(ctx context.Context, id string, index int) ([]model.DateSlot, error)
}

type TravellSvc interface {
	List(ctx context.Context, status string) ([]model.Travell, error)
	Get(ctx context.Context, id string) (model.Travell, error)
	Create(ctx context.Context, t model.Travell) (model.Travell, error)
	Update(ctx context.Context, id string, patch func(*model.Travell) error) (model.Travell, error)
	Delete(ctx context.Context, id string) error
}

type PricingSvc interface {
	List(ctx context.Context, status string) ([]model.PricingCard, error)
	Get(ctx context.Context, id string) (model.PricingCard, error)
	Create(ctx context.Context, p model.PricingCard) (model.PricingCard, error)
	Update(ctx context.Context, id string, patch func(*model.PricingCard) error) (model.PricingCard, error)
	Delete(ctx context.Context, id string) error
}

type HeroImageSvc interface {
	List(ctx context.Context) ([]model.HeroImage, error)
	Get(ctx context.Context, id string) (model.HeroImage, error)
	Create(ctx context.Context, h model.HeroImage) (model.HeroImage, error)
	Update(ctx context.Context, id string, patch func(*model.HeroImage) error) (model.HeroImage, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	List(ctx context.Context) ([]model.Booking, error)
	Get(ctx context.Context, key string) (model.Booking, error)
	Create(ctx context.Context, req service.BookingRequest) (model.Booking, error)
	Update(ctx context.Context, key string, upd model.BookingUpdate) (model.Booking, error)
	Delete(ctx context.Context, key string) error
}

type SettingsSvc interface {
	Get(ctx context.Context) (model.Settings, error)
	Update(ctx context.Context, body map[string]interface{}) (model.Settings, error)
}

type BillSvc interface {
	List(ctx context.Context) ([]model.Bill, error)
	Get(ctx context.Context, id string) (model.Bill, error)
	NextNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, b model.Bill) (model.Bill, error)
	Update(ctx context.Context, id string, patch func(*model.Bill) error) (model.Bill, error)
	Delete(ctx context.Context, id string) error
	SendEmail(ctx context.Context, id string) (string, error)
}

type TourBillSvc interface {
	List(ctx context.Context) ([]model.TourBill, error)
	Get(ctx context.Context, id string) (model.TourBill, error)
	NextNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, b model.TourBill) (model.TourBill, error)
	Update(ctx context.Context, id string, patch func(*model.TourBill) error) (model.TourBill, error)
	Delete(ctx context.Context, id string) error
	SendEmail(ctx context.Context, id string) (string, error)
}

type AuthSvc interface {
	Login(username, password string) (string, error)
}

// Services groups everything the handlers call into. Nil members are
// only allowed for routes that are never registered.
type Services struct {
	Tours      TourSvc
	Travells   TravellSvc
	Pricing    PricingSvc
	HeroImages HeroImageSvc
	Bookings   BookingSvc
	Settings   SettingsSvc
	Bills      BillSvc
	TourBills  TourBillSvc
	Auth       AuthSvc
	Media      media.Store
}

type Handler struct {
	svc    Services
	logger logger.Logger
}

func NewHandler(svc Services, logger logger.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// fail logs server side failures and writes the JSON error response.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := errors.StatusOf(err)
	if status >= fiber.StatusInternalServerError {
		h.logger.LogAttrs(c.UserContext(), logger.ErrorLevel, "request failed",
			logger.String("method", c.Method()),
			logger.String("path", c.Path()),
			logger.String("error", err.Error()),
		)
	}
	return errors.Raise(c, err)
}

// bodyOnto decodes the request body over a stored document, so fields the
// client leaves out keep their current value.
func bodyOnto[T any](c *fiber.Ctx) func(*T) error {
	return func(doc *T) error {
		if err := c.BodyParser(doc); err != nil {
			return model.Invalid("invalid request body: %v", err)
		}
		return nil
	}
}

func (h *Handler) badBody(c *fiber.Ctx, err error) error {
	return errors.RaiseBadRequestError(c, "invalid request body: "+err.Error())
}

func deleted(c *fiber.Ctx, entity string) error {
	return c.JSON(fiber.Map{"message": entity + " deleted successfully"})
}

func GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func paramIndex(c *fiber.Ctx, name string) (int, error) {
	index, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, model.Invalid("%s must be a number", name)
	}
	return index, nil
}
