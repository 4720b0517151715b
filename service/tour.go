package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-cms/model"
	"travel-cms/service/ports"
)

const defaultSpots = 20

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases name, collapses every run of other characters into a
// dash and appends the creation time in milliseconds.
func Slugify(name string, at time.Time) string {
	return slugUnsafe.ReplaceAllString(strings.ToLower(name), "-") + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}

type TourService struct {
	repo   ports.TourRepo
	logger logger.Logger
	now    func() time.Time
}

func NewTourService(repo ports.TourRepo, logger logger.Logger) *TourService {
	return &TourService{repo: repo, logger: logger, now: time.Now}
}

// List returns active tours unless status says otherwise; "all" drops the
// status filter.
func (s *TourService) List(ctx context.Context, category, status string) ([]model.Tour, error) {
	filter := model.TourFilter{Category: model.TourCategory(category)}
	switch status {
	case "":
		filter.Status = model.TourActive
	case "all":
	default:
		filter.Status = model.TourStatus(status)
	}
	return s.repo.List(ctx, filter)
}

func (s *TourService) Get(ctx context.Context, slugOrID string) (model.Tour, error) {
	return s.repo.FindBySlugOrID(ctx, slugOrID)
}

func (s *TourService) Create(ctx context.Context, tour model.Tour) (model.Tour, error) {
	applyTourDefaults(&tour)
	if err := model.Validate(tour); err != nil {
		return model.Tour{}, err
	}

	now := s.now().UTC()
	tour.Id = primitive.NewObjectID()
	if strings.TrimSpace(tour.Slug) == "" {
		tour.Slug = Slugify(tour.Title, now)
	}
	tour.CreatedAt = model.NewDate(now)
	tour.UpdatedAt = tour.CreatedAt

	if err := s.repo.Create(ctx, tour); err != nil {
		return model.Tour{}, fmt.Errorf("create tour: %w", err)
	}

	s.logger.Info("tour created",
		logger.String("tour_id", tour.Id.Hex()),
		logger.String("slug", tour.Slug),
	)
	return tour, nil
}

// Update applies patch to the stored tour, so fields the patch leaves alone
// keep their value. The id, creation time and a non-empty slug survive.
func (s *TourService) Update(ctx context.Context, id string, patch func(*model.Tour) error) (model.Tour, error) {
	tour, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.Tour{}, err
	}
	storedID, createdAt, slug := tour.Id, tour.CreatedAt, tour.Slug
	if err = patch(&tour); err != nil {
		return model.Tour{}, err
	}
	tour.Id, tour.CreatedAt = storedID, createdAt
	if strings.TrimSpace(tour.Slug) == "" {
		tour.Slug = slug
	}

	applyTourDefaults(&tour)
	if err = model.Validate(tour); err != nil {
		return model.Tour{}, err
	}
	tour.UpdatedAt = model.NewDate(s.now().UTC())

	if err = s.repo.Replace(ctx, tour); err != nil {
		return model.Tour{}, fmt.Errorf("update tour: %w", err)
	}
	return tour, nil
}

func (s *TourService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UpcomingDates drops slots that started before today, persisting the
// pruned list only when something was removed.
func (s *TourService) UpcomingDates(ctx context.Context, id string) ([]model.DateSlot, error) {
	tour, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upcoming := PruneDates(tour.AvailableDates, s.now())
	if len(upcoming) != len(tour.AvailableDates) {
		if err = s.repo.SetDates(ctx, tour.Id, upcoming); err != nil {
			return nil, fmt.Errorf("prune tour dates: %w", err)
		}
		s.logger.Info("expired tour dates removed",
			logger.String("tour_id", tour.Id.Hex()),
			logger.Int("removed", len(tour.AvailableDates)-len(upcoming)),
		)
	}
	return upcoming, nil
}

type DateSlotInput struct {
	StartDate      model.Date `json:"startDate"`
	EndDate        model.Date `json:"endDate"`
	SpotsAvailable *int       `json:"spotsAvailable"`
}

func (s *TourService) AddDate(ctx context.Context, id string, in DateSlotInput) ([]model.DateSlot, error) {
	if in.StartDate.IsZero() {
		return nil, model.Invalid("startDate is required")
	}
	tour, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	slot := model.DateSlot{StartDate: in.StartDate, EndDate: in.EndDate, SpotsAvailable: defaultSpots}
	if slot.EndDate.IsZero() {
		slot.EndDate = slot.StartDate
	}
	if in.SpotsAvailable != nil {
		slot.SpotsAvailable = *in.SpotsAvailable
	}
	if slot.EndDate.Before(slot.StartDate.Time) {
		return nil, model.Invalid("endDate is before startDate")
	}

	dates := append(tour.AvailableDates, slot)
	if err = s.repo.SetDates(ctx, tour.Id, dates); err != nil {
		return nil, fmt.Errorf("add tour date: %w", err)
	}
	return dates, nil
}

func (s *TourService) RemoveDate(ctx context.Context, id string, index int) ([]model.DateSlot, error) {
	tour, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(tour.AvailableDates) {
		return nil, model.NotFound("date slot")
	}

	dates := make([]model.DateSlot, 0, len(tour.AvailableDates)-1)
	dates = append(dates, tour.AvailableDates[:index]...)
	dates = append(dates, tour.AvailableDates[index+1:]...)
	if err = s.repo.SetDates(ctx, tour.Id, dates); err != nil {
		return nil, fmt.Errorf("remove tour date: %w", err)
	}
	return dates, nil
}

// PruneDates keeps slots whose start is today or later in now's location.
// Slots without a start date are dropped.
func PruneDates(dates []model.DateSlot, now time.Time) []model.DateSlot {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	upcoming := make([]model.DateSlot, 0, len(dates))
	for _, d := range dates {
		if d.StartDate.IsZero() || d.StartDate.Before(today) {
			continue
		}
		upcoming = append(upcoming, d)
	}
	return upcoming
}

func applyTourDefaults(t *model.Tour) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Currency == "" {
		t.Currency = "INR"
	}
	if t.Difficulty == "" {
		t.Difficulty = "Easy"
	}
	if t.GroupSize == "" {
		t.GroupSize = "2-8 people"
	}
	if t.Status == "" {
		t.Status = model.TourActive
	}
	if t.Highlights == nil {
		t.Highlights = []string{}
	}
	if t.Itinerary == nil {
		t.Itinerary = []model.ItineraryDay{}
	}
	if t.Inclusions == nil {
		t.Inclusions = []string{}
	}
	if t.Exclusions == nil {
		t.Exclusions = []string{}
	}
	if t.Images.Gallery == nil {
		t.Images.Gallery = []string{}
	}
	if t.AvailableDates == nil {
		t.AvailableDates = []model.DateSlot{}
	}
}
