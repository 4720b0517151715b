package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travel-cms/model"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *mockBookingRepo) Find(ctx context.Context, key string) (model.Booking, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(model.Booking), args.Error(1)
}

func (m *mockBookingRepo) Create(ctx context.Context, b model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) Replace(ctx context.Context, b model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestNewBookingRef(t *testing.T) {
	ref := NewBookingRef(time.UnixMilli(1700000000000))

	assert.Regexp(t, regexp.MustCompile(`^BK1700000000000\d{1,3}$`), ref)
}

func TestBookingService_Create(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewBookingService(repo, newTestLogger(t))

	repo.On("Create", mock.Anything, mock.AnythingOfType("model.Booking")).Return(nil)

	booking, err := svc.Create(context.Background(), BookingRequest{Name: " Ravi ", Phone: "99999", VehicleType: "Innova"})

	require.NoError(t, err)
	assert.Equal(t, "Ravi", booking.Name)
	assert.Equal(t, model.BookingPending, booking.Status)
	assert.Regexp(t, `^BK\d+$`, booking.BookingId)
}

func TestBookingService_Create_RequiresContact(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewBookingService(repo, newTestLogger(t))

	_, err := svc.Create(context.Background(), BookingRequest{Name: "Ravi"})

	assert.True(t, errors.Is(err, model.ErrValidation))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Update_Status(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewBookingService(repo, newTestLogger(t))

	stored := model.Booking{Id: mustObjectID(t), BookingId: "BK1", Name: "Ravi", Status: model.BookingPending}
	repo.On("Find", mock.Anything, "BK1").Return(stored, nil)
	repo.On("Replace", mock.Anything, mock.AnythingOfType("model.Booking")).Return(nil)

	confirmed := model.BookingConfirmed
	booking, err := svc.Update(context.Background(), "BK1", model.BookingUpdate{Status: &confirmed})

	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, booking.Status)
	assert.Equal(t, "Ravi", booking.Name)

	bogus := model.BookingStatus("shipped")
	_, err = svc.Update(context.Background(), "BK1", model.BookingUpdate{Status: &bogus})
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestBookingService_Delete_ByReference(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewBookingService(repo, newTestLogger(t))

	stored := model.Booking{Id: mustObjectID(t), BookingId: "BK1"}
	repo.On("Find", mock.Anything, "BK1").Return(stored, nil)
	repo.On("Delete", mock.Anything, stored.Id.Hex()).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "BK1"))
	repo.AssertExpectations(t)
}
