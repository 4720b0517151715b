package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	wbflogger "github.com/wb-go/wbf/logger"

	"travel-cms/handlers"
	"travel-cms/metrics"
	"travel-cms/middleware"
)

type Options struct {
	// Logger receives recovered panics.
	Logger         wbflogger.Logger
	AllowedOrigins []string
	// Admin guards every mutating catalog route and all bill routes.
	Admin fiber.Handler
	// AccessLog turns on fiber's request logger for the API group.
	AccessLog bool
}

func SetupRoutes(app *fiber.App, h *handlers.Handler, opts Options) {
	app.Use(middleware.Recover(opts.Logger))
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(opts.AllowedOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: len(opts.AllowedOrigins) > 0,
	}))
	app.Use(middleware.CountRequests())

	app.Get("/health", handlers.GetHealth)
	app.Get("/metrics", metrics.Handler())

	admin := opts.Admin
	if admin == nil {
		admin = func(c *fiber.Ctx) error { return c.Next() }
	}

	api := app.Group("/api")
	if opts.AccessLog {
		api.Use(logger.New())
	}

	//Login
	api.Post("/login", h.Login)

	//Tours
	tours := api.Group("/tours")
	tours.Get("/", h.GetTours)
	tours.Get("/:id/dates", h.GetTourDates)
	tours.Post("/:id/dates", admin, h.AddTourDate)
	tours.Delete("/:id/dates/:index", admin, h.DeleteTourDate)
	tours.Get("/:slug", h.GetTour)
	tours.Post("/", admin, h.CreateTour)
	tours.Put("/:id", admin, h.UpdateTour)
	tours.Delete("/:id", admin, h.DeleteTour)

	//Uploads
	upload := api.Group("/upload", admin)
	upload.Post("/image", h.UploadImage)
	upload.Post("/images", h.UploadImages)

	//Travells
	travells := api.Group("/travells")
	travells.Get("/", h.GetTravells)
	travells.Get("/:id", h.GetTravell)
	travells.Post("/", admin, h.CreateTravell)
	travells.Put("/:id", admin, h.UpdateTravell)
	travells.Delete("/:id", admin, h.DeleteTravell)

	//Hero images
	heroImages := api.Group("/hero-images")
	heroImages.Get("/", h.GetHeroImages)
	heroImages.Post("/", admin, h.CreateHeroImage)
	heroImages.Put("/:id", admin, h.UpdateHeroImage)
	heroImages.Delete("/:id", admin, h.DeleteHeroImage)

	//Settings
	settings := api.Group("/settings")
	settings.Get("/", h.GetSettings)
	settings.Put("/", admin, h.UpdateSettings)

	//Bookings
	bookings := api.Group("/bookings")
	bookings.Post("/", h.CreateBooking)
	bookings.Get("/", admin, h.GetBookings)
	bookings.Get("/:id", admin, h.GetBooking)
	bookings.Put("/:id", admin, h.UpdateBooking)
	bookings.Delete("/:id", admin, h.DeleteBooking)

	//Pricing
	pricing := api.Group("/pricing")
	pricing.Get("/", h.GetPricingCards)
	pricing.Get("/:id", h.GetPricingCard)
	pricing.Post("/", admin, h.CreatePricingCard)
	pricing.Put("/:id", admin, h.UpdatePricingCard)
	pricing.Delete("/:id", admin, h.DeletePricingCard)

	//Bills
	bills := api.Group("/bills", admin)
	bills.Get("/", h.GetBills)
	bills.Get("/next-number", h.GetNextBillNo)
	bills.Get("/:id", h.GetBill)
	bills.Post("/", h.CreateBill)
	bills.Put("/:id", h.UpdateBill)
	bills.Delete("/:id", h.DeleteBill)
	bills.Post("/:id/send-email", h.SendBillEmail)

	//Tour bills
	tourBills := api.Group("/tour-bills", admin)
	tourBills.Get("/", h.GetTourBills)
	tourBills.Get("/next-number", h.GetNextTourBillNo)
	tourBills.Get("/:id", h.GetTourBill)
	tourBills.Post("/", h.CreateTourBill)
	tourBills.Put("/:id", h.UpdateTourBill)
	tourBills.Delete("/:id", h.DeleteTourBill)
	tourBills.Post("/:id/send-email", h.SendTourBillEmail)
}
