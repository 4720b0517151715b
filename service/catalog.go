package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-cms/media"
	"travel-cms/model"
	"travel-cms/service/ports"
)

func active() *bool {
	v := true
	return &v
}

type TravellService struct {
	repo ports.TravellRepo
	now  func() time.Time
}

func NewTravellService(repo ports.TravellRepo) *TravellService {
	return &TravellService{repo: repo, now: time.Now}
}

func (s *TravellService) List(ctx context.Context, status string) ([]model.Travell, error) {
	return s.repo.List(ctx, status)
}

func (s *TravellService) Get(ctx context.Context, id string) (model.Travell, error) {
	return s.repo.Get(ctx, id)
}

func (s *TravellService) Create(ctx context.Context, t model.Travell) (model.Travell, error) {
	if err := model.Validate(t); err != nil {
		return model.Travell{}, err
	}

	now := s.now().UTC()
	t.Id = primitive.NewObjectID()
	if t.Slug == "" {
		t.Slug = Slugify(t.Name, now)
	}
	if t.IsActive == nil {
		t.IsActive = active()
	}
	if t.Features == nil {
		t.Features = []string{}
	}
	t.CreatedAt = model.NewDate(now)
	t.UpdatedAt = t.CreatedAt

	if err := s.repo.Create(ctx, t); err != nil {
		return model.Travell{}, fmt.Errorf("create travell: %w", err)
	}
	return t, nil
}

// Update applies patch to the stored vehicle, so fields the patch leaves
// alone keep their value.
func (s *TravellService) Update(ctx context.Context, id string, patch func(*model.Travell) error) (model.Travell, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.Travell{}, err
	}
	storedID, createdAt := t.Id, t.CreatedAt
	if err = patch(&t); err != nil {
		return model.Travell{}, err
	}
	t.Id, t.CreatedAt = storedID, createdAt
	if err = model.Validate(t); err != nil {
		return model.Travell{}, err
	}

	t.UpdatedAt = model.NewDate(s.now().UTC())
	if err = s.repo.Replace(ctx, t); err != nil {
		return model.Travell{}, fmt.Errorf("update travell: %w", err)
	}
	return t, nil
}

func (s *TravellService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type PricingService struct {
	repo ports.PricingRepo
	now  func() time.Time
}

func NewPricingService(repo ports.PricingRepo) *PricingService {
	return &PricingService{repo: repo, now: time.Now}
}

// List returns active cards unless status is "all".
func (s *PricingService) List(ctx context.Context, status string) ([]model.PricingCard, error) {
	if status != "all" {
		status = "active"
	}
	return s.repo.List(ctx, status)
}

func (s *PricingService) Get(ctx context.Context, id string) (model.PricingCard, error) {
	return s.repo.Get(ctx, id)
}

func (s *PricingService) Create(ctx context.Context, p model.PricingCard) (model.PricingCard, error) {
	applyPricingDefaults(&p)
	if err := model.Validate(p); err != nil {
		return model.PricingCard{}, err
	}

	now := s.now().UTC()
	p.Id = primitive.NewObjectID()
	p.CreatedAt = model.NewDate(now)
	p.UpdatedAt = p.CreatedAt
	if err := s.repo.Create(ctx, p); err != nil {
		return model.PricingCard{}, fmt.Errorf("create pricing card: %w", err)
	}
	return p, nil
}

func (s *PricingService) Update(ctx context.Context, id string, patch func(*model.PricingCard) error) (model.PricingCard, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.PricingCard{}, err
	}
	storedID, createdAt := p.Id, p.CreatedAt
	if err = patch(&p); err != nil {
		return model.PricingCard{}, err
	}
	p.Id, p.CreatedAt = storedID, createdAt
	applyPricingDefaults(&p)
	if err = model.Validate(p); err != nil {
		return model.PricingCard{}, err
	}

	p.UpdatedAt = model.NewDate(s.now().UTC())
	if err = s.repo.Replace(ctx, p); err != nil {
		return model.PricingCard{}, fmt.Errorf("update pricing card: %w", err)
	}
	return p, nil
}

func (s *PricingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func applyPricingDefaults(p *model.PricingCard) {
	if p.PriceUnit == "" {
		p.PriceUnit = "/day"
	}
	if p.BgGradient == "" {
		p.BgGradient = "from-orange-50 to-pink-50"
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.IsActive == nil {
		p.IsActive = active()
	}
}

type HeroImageService struct {
	repo   ports.HeroImageRepo
	media  media.Store
	logger logger.Logger
	now    func() time.Time
}

func NewHeroImageService(repo ports.HeroImageRepo, store media.Store, logger logger.Logger) *HeroImageService {
	return &HeroImageService{repo: repo, media: store, logger: logger, now: time.Now}
}

func (s *HeroImageService) List(ctx context.Context) ([]model.HeroImage, error) {
	return s.repo.List(ctx)
}

func (s *HeroImageService) Get(ctx context.Context, id string) (model.HeroImage, error) {
	return s.repo.Get(ctx, id)
}

func (s *HeroImageService) Create(ctx context.Context, h model.HeroImage) (model.HeroImage, error) {
	if err := model.Validate(h); err != nil {
		return model.HeroImage{}, err
	}
	if h.IsActive == nil {
		h.IsActive = active()
	}

	now := s.now().UTC()
	h.Id = primitive.NewObjectID()
	h.CreatedAt = model.NewDate(now)
	h.UpdatedAt = h.CreatedAt
	if err := s.repo.Create(ctx, h); err != nil {
		return model.HeroImage{}, fmt.Errorf("create hero image: %w", err)
	}
	return h, nil
}

func (s *HeroImageService) Update(ctx context.Context, id string, patch func(*model.HeroImage) error) (model.HeroImage, error) {
	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.HeroImage{}, err
	}
	storedID, createdAt := h.Id, h.CreatedAt
	if err = patch(&h); err != nil {
		return model.HeroImage{}, err
	}
	h.Id, h.CreatedAt = storedID, createdAt
	if err = model.Validate(h); err != nil {
		return model.HeroImage{}, err
	}

	h.UpdatedAt = model.NewDate(s.now().UTC())
	if err = s.repo.Replace(ctx, h); err != nil {
		return model.HeroImage{}, fmt.Errorf("update hero image: %w", err)
	}
	return h, nil
}

// Delete removes the record and then tries to remove the stored asset.
// A failed asset removal is logged and otherwise ignored.
func (s *HeroImageService) Delete(ctx context.Context, id string) error {
	image, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if image.PublicId != "" && s.media != nil {
		if err = s.media.Destroy(ctx, image.PublicId); err != nil {
			s.logger.Warn("failed to destroy hero image asset",
				logger.String("public_id", image.PublicId),
				logger.String("error", err.Error()),
			)
		}
	}
	return nil
}
