package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-cms/model"
	"travel-cms/service/ports"
)

// NewBookingRef builds the public booking reference: "BK", the time in
// milliseconds and a random suffix below 1000.
func NewBookingRef(at time.Time) string {
	return fmt.Sprintf("BK%d%d", at.UnixMilli(), rand.Intn(1000))
}

type BookingRequest struct {
	Name                   string     `json:"name" validate:"notblank"`
	Phone                  string     `json:"phone" validate:"notblank"`
	TravelDate             model.Date `json:"travelDate"`
	VehicleType            string     `json:"vehicleType"`
	AdditionalRequirements string     `json:"additionalRequirements"`
}

type BookingService struct {
	repo   ports.BookingRepo
	logger logger.Logger
	now    func() time.Time
}

func NewBookingService(repo ports.BookingRepo, logger logger.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger, now: time.Now}
}

func (s *BookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.repo.List(ctx)
}

func (s *BookingService) Get(ctx context.Context, key string) (model.Booking, error) {
	return s.repo.Find(ctx, key)
}

// Create records a new enquiry from the public site. It always starts pending.
func (s *BookingService) Create(ctx context.Context, req BookingRequest) (model.Booking, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := model.Validate(req); err != nil {
		return model.Booking{}, err
	}

	now := s.now().UTC()
	booking := model.Booking{
		Id:                     primitive.NewObjectID(),
		BookingId:              NewBookingRef(now),
		Name:                   req.Name,
		Phone:                  req.Phone,
		TravelDate:             req.TravelDate,
		VehicleType:            req.VehicleType,
		AdditionalRequirements: req.AdditionalRequirements,
		Status:                 model.BookingPending,
		CreatedAt:              model.NewDate(now),
		UpdatedAt:              model.NewDate(now),
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return model.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.BookingId),
		logger.String("vehicle_type", booking.VehicleType),
	)
	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, key string, upd model.BookingUpdate) (model.Booking, error) {
	if err := model.Validate(upd); err != nil {
		return model.Booking{}, err
	}

	booking, err := s.repo.Find(ctx, key)
	if err != nil {
		return model.Booking{}, err
	}

	if upd.Name != nil {
		booking.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Phone != nil {
		booking.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.TravelDate != nil {
		booking.TravelDate = *upd.TravelDate
	}
	if upd.VehicleType != nil {
		booking.VehicleType = *upd.VehicleType
	}
	if upd.AdditionalRequirements != nil {
		booking.AdditionalRequirements = *upd.AdditionalRequirements
	}
	if upd.Status != nil && *upd.Status != booking.Status {
		s.logger.Info("booking status changed",
			logger.String("booking_id", booking.BookingId),
			logger.String("from", string(booking.Status)),
			logger.String("to", string(*upd.Status)),
		)
		booking.Status = *upd.Status
	}
	booking.UpdatedAt = model.NewDate(s.now().UTC())

	if err = s.repo.Replace(ctx, booking); err != nil {
		return model.Booking{}, fmt.Errorf("update booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, key string) error {
	booking, err := s.repo.Find(ctx, key)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, booking.Id.Hex())
}
