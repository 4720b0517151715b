package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travel-cms/model"
)

type mockHeroImageRepo struct {
	mock.Mock
}

func (m *mockHeroImageRepo) List(ctx context.Context) ([]model.HeroImage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.HeroImage), args.Error(1)
}

func (m *mockHeroImageRepo) Get(ctx context.Context, id string) (model.HeroImage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.HeroImage), args.Error(1)
}

func (m *mockHeroImageRepo) Create(ctx context.Context, h model.HeroImage) error {
	return m.Called(ctx, h).Error(0)
}

func (m *mockHeroImageRepo) Replace(ctx context.Context, h model.HeroImage) error {
	return m.Called(ctx, h).Error(0)
}

func (m *mockHeroImageRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestHeroImageService_Delete_DestroyIsBestEffort(t *testing.T) {
	repo := new(mockHeroImageRepo)
	store := new(mockMedia)
	svc := NewHeroImageService(repo, store, newTestLogger(t))

	repo.On("Get", mock.Anything, "h1").Return(model.HeroImage{Url: "u", PublicId: "travel-agency/x"}, nil)
	repo.On("Delete", mock.Anything, "h1").Return(nil)
	store.On("Destroy", mock.Anything, "travel-agency/x").Return(errors.New("cloudinary down"))

	require.NoError(t, svc.Delete(context.Background(), "h1"))
	store.AssertExpectations(t)
}

func TestHeroImageService_Create_DefaultsActive(t *testing.T) {
	repo := new(mockHeroImageRepo)
	svc := NewHeroImageService(repo, new(mockMedia), newTestLogger(t))

	repo.On("Create", mock.Anything, mock.AnythingOfType("model.HeroImage")).Return(nil)

	image, err := svc.Create(context.Background(), model.HeroImage{Url: "https://a.test/x.jpg"})
	require.NoError(t, err)
	require.NotNil(t, image.IsActive)
	assert.True(t, *image.IsActive)

	_, err = svc.Create(context.Background(), model.HeroImage{})
	assert.True(t, errors.Is(err, model.ErrValidation))
}

type memPricingRepo struct {
	cards   []model.PricingCard
	status  string
	created []model.PricingCard
}

func (r *memPricingRepo) List(ctx context.Context, status string) ([]model.PricingCard, error) {
	r.status = status
	return r.cards, nil
}

func (r *memPricingRepo) Get(ctx context.Context, id string) (model.PricingCard, error) {
	return model.PricingCard{}, model.NotFound("pricing card")
}

func (r *memPricingRepo) Create(ctx context.Context, p model.PricingCard) error {
	r.created = append(r.created, p)
	return nil
}

func (r *memPricingRepo) Replace(ctx context.Context, p model.PricingCard) error {
	return nil
}

func (r *memPricingRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestPricingService(t *testing.T) {
	repo := &memPricingRepo{}
	svc := NewPricingService(repo)
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "active", repo.status)

	_, err = svc.List(ctx, "all")
	require.NoError(t, err)
	assert.Equal(t, "all", repo.status)

	card, err := svc.Create(ctx, model.PricingCard{Title: "Sedan", Subtitle: "4 seats", Price: "3,500"})
	require.NoError(t, err)
	assert.Equal(t, "/day", card.PriceUnit)
	assert.Equal(t, "from-orange-50 to-pink-50", card.BgGradient)

	_, err = svc.Update(ctx, "missing", func(p *model.PricingCard) error {
		*p = card
		return nil
	})
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestValidateTravell(t *testing.T) {
	valid := model.Travell{Name: "Innova", Image: "https://a.test/i.jpg", Seats: 7, PricePerKm: 18}
	assert.NoError(t, model.Validate(valid))

	noSeats := valid
	noSeats.Seats = 0
	assert.True(t, errors.Is(model.Validate(noSeats), model.ErrValidation))
}

type memTravellRepo struct {
	stored   model.Travell
	replaced []model.Travell
}

func (r *memTravellRepo) List(ctx context.Context, status string) ([]model.Travell, error) {
	return []model.Travell{r.stored}, nil
}

func (r *memTravellRepo) Get(ctx context.Context, id string) (model.Travell, error) {
	if id != r.stored.Id.Hex() {
		return model.Travell{}, model.NotFound("travell")
	}
	return r.stored, nil
}

func (r *memTravellRepo) Create(ctx context.Context, t model.Travell) error {
	return nil
}

func (r *memTravellRepo) Replace(ctx context.Context, t model.Travell) error {
	r.replaced = append(r.replaced, t)
	return nil
}

func (r *memTravellRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestTravellService_Update_OverlaysPatch(t *testing.T) {
	stored := model.Travell{Id: mustObjectID(t), Name: "Innova", Slug: "innova-1", Image: "i.jpg", Seats: 7,
		PricePerKm: 18, Features: []string{"AC"}, CreatedAt: day(-10)}
	repo := &memTravellRepo{stored: stored}
	svc := NewTravellService(repo)

	updated, err := svc.Update(context.Background(), stored.Id.Hex(), func(tr *model.Travell) error {
		tr.PricePerKm = 20
		tr.CreatedAt = day(0)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, repo.replaced, 1)
	assert.Equal(t, model.Amount(20), updated.PricePerKm)
	assert.Equal(t, "Innova", updated.Name)
	assert.Equal(t, []string{"AC"}, updated.Features)
	assert.True(t, updated.CreatedAt.Equal(stored.CreatedAt.Time))

	_, err = svc.Update(context.Background(), stored.Id.Hex(), func(tr *model.Travell) error {
		return model.Invalid("invalid request body")
	})
	assert.True(t, errors.Is(err, model.ErrValidation))
	assert.Len(t, repo.replaced, 1)
}
