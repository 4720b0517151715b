package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-cms/invoice"
	"travel-cms/mailer"
	"travel-cms/media"
	"travel-cms/model"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type mockBillRepo struct {
	mock.Mock
}

func (m *mockBillRepo) List(ctx context.Context) ([]model.Bill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Bill), args.Error(1)
}

func (m *mockBillRepo) BillNumbers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockBillRepo) Get(ctx context.Context, id string) (model.Bill, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Bill), args.Error(1)
}

func (m *mockBillRepo) Create(ctx context.Context, b model.Bill) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBillRepo) Replace(ctx context.Context, b model.Bill) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBillRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockTourBillRepo struct {
	mock.Mock
}

func (m *mockTourBillRepo) List(ctx context.Context) ([]model.TourBill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.TourBill), args.Error(1)
}

func (m *mockTourBillRepo) BillNumbers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockTourBillRepo) Get(ctx context.Context, id string) (model.TourBill, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.TourBill), args.Error(1)
}

func (m *mockTourBillRepo) Create(ctx context.Context, b model.TourBill) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockTourBillRepo) Replace(ctx context.Context, b model.TourBill) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockTourBillRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(doc invoice.Document) ([]byte, error) {
	args := m.Called(doc)
	return args.Get(0).([]byte), args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type mockMedia struct {
	mock.Mock
}

func (m *mockMedia) Upload(ctx context.Context, image, folder string) (media.Asset, error) {
	args := m.Called(ctx, image, folder)
	return args.Get(0).(media.Asset), args.Error(1)
}

func (m *mockMedia) Destroy(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

// memTourRepo keeps tours in memory and counts date writes.
type memTourRepo struct {
	tours     map[primitive.ObjectID]model.Tour
	dateSaves int
}

func newMemTourRepo(tours ...model.Tour) *memTourRepo {
	r := &memTourRepo{tours: map[primitive.ObjectID]model.Tour{}}
	for _, t := range tours {
		r.tours[t.Id] = t
	}
	return r
}

func (r *memTourRepo) List(ctx context.Context, filter model.TourFilter) ([]model.Tour, error) {
	out := []model.Tour{}
	for _, t := range r.tours {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memTourRepo) FindBySlugOrID(ctx context.Context, key string) (model.Tour, error) {
	for _, t := range r.tours {
		if t.Slug == key || t.Id.Hex() == key {
			return t, nil
		}
	}
	return model.Tour{}, model.NotFound("tour")
}

func (r *memTourRepo) Get(ctx context.Context, id string) (model.Tour, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Tour{}, model.NotFound("tour")
	}
	t, ok := r.tours[oid]
	if !ok {
		return model.Tour{}, model.NotFound("tour")
	}
	return t, nil
}

func (r *memTourRepo) Create(ctx context.Context, tour model.Tour) error {
	for _, t := range r.tours {
		if t.Slug == tour.Slug {
			return &model.DuplicateKeyError{Field: "slug", Value: tour.Slug}
		}
	}
	r.tours[tour.Id] = tour
	return nil
}

func (r *memTourRepo) Replace(ctx context.Context, tour model.Tour) error {
	if _, ok := r.tours[tour.Id]; !ok {
		return model.NotFound("tour")
	}
	r.tours[tour.Id] = tour
	return nil
}

func (r *memTourRepo) Delete(ctx context.Context, id string) error {
	t, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	delete(r.tours, t.Id)
	return nil
}

func (r *memTourRepo) SetDates(ctx context.Context, id primitive.ObjectID, dates []model.DateSlot) error {
	t, ok := r.tours[id]
	if !ok {
		return model.NotFound("tour")
	}
	t.AvailableDates = dates
	r.tours[id] = t
	r.dateSaves++
	return nil
}

type memSettingsRepo struct {
	doc      *model.Settings
	replaced int
	upserts  []bson.M
}

func (r *memSettingsRepo) Get(ctx context.Context) (model.Settings, error) {
	if r.doc == nil {
		return model.Settings{}, model.NotFound("settings")
	}
	return *r.doc, nil
}

func (r *memSettingsRepo) Create(ctx context.Context, s model.Settings) error {
	r.doc = &s
	return nil
}

func (r *memSettingsRepo) Replace(ctx context.Context, s model.Settings) error {
	r.doc = &s
	r.replaced++
	return nil
}

func (r *memSettingsRepo) Upsert(ctx context.Context, fields, onInsert bson.M) (model.Settings, error) {
	r.upserts = append(r.upserts, fields)
	if r.doc == nil {
		s := model.DefaultSettings()
		r.doc = &s
	}
	return *r.doc, nil
}
