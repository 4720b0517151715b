// Package media stores uploaded images on Cloudinary.
package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/sync/errgroup"

	"travel-cms/model"
)

const DefaultFolder = "travel-agency"

var ErrNotConfigured = errors.New("cloudinary is not configured")

type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type Store interface {
	Upload(ctx context.Context, image, folder string) (Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

type Credentials struct {
	CloudName string
	APIKey    string
	APISecret string
}

func (c Credentials) complete() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary returns a store whose operations fail with ErrNotConfigured
// when creds are incomplete.
func NewCloudinary(creds Credentials) (*Cloudinary, error) {
	if !creds.complete() {
		return &Cloudinary{}, nil
	}
	cld, err := cloudinary.NewFromParams(creds.CloudName, creds.APIKey, creds.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

// Upload accepts a data URI or a remote URL.
func (c *Cloudinary) Upload(ctx context.Context, image, folder string) (Asset, error) {
	if c.cld == nil {
		return Asset{}, ErrNotConfigured
	}
	if strings.TrimSpace(image) == "" {
		return Asset{}, model.Invalid("no image provided")
	}
	if folder == "" {
		folder = DefaultFolder
	}

	res, err := c.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return Asset{}, fmt.Errorf("upload image: %w", err)
	}
	if res.Error.Message != "" {
		return Asset{}, fmt.Errorf("upload image: %s", res.Error.Message)
	}
	return Asset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	if c.cld == nil {
		return ErrNotConfigured
	}
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("destroy %s: %s", publicID, res.Error.Message)
	}
	return nil
}

// UploadMany uploads images concurrently and returns the assets in input
// order. The first failure cancels the remaining uploads.
func UploadMany(ctx context.Context, store Store, images []string, folder string) ([]Asset, error) {
	if len(images) == 0 {
		return nil, model.Invalid("no images provided")
	}

	assets := make([]Asset, len(images))
	g, gctx := errgroup.WithContext(ctx)
	for i, image := range images {
		i, image := i, image
		g.Go(func() error {
			asset, err := store.Upload(gctx, image, folder)
			if err != nil {
				return err
			}
			assets[i] = asset
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}
