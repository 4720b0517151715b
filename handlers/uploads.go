package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travel-cms/errors"
	"travel-cms/media"
)

func (h *Handler) UploadImage(c *fiber.Ctx) error {
	req := new(struct {
		Image  string `json:"image"`
		Folder string `json:"folder"`
	})
	if err := c.BodyParser(req); err != nil {
		return h.badBody(c, err)
	}
	if req.Image == "" {
		return errors.RaiseBadRequestError(c, "No image provided")
	}

	asset, err := h.svc.Media.Upload(c.UserContext(), req.Image, req.Folder)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"url": asset.URL, "publicId": asset.PublicID})
}

func (h *Handler) UploadImages(c *fiber.Ctx) error {
	req := new(struct {
		Images []string `json:"images"`
		Folder string   `json:"folder"`
	})
	if err := c.BodyParser(req); err != nil {
		return h.badBody(c, err)
	}
	if req.Images == nil {
		return errors.RaiseBadRequestError(c, "No images array provided")
	}

	assets, err := media.UploadMany(c.UserContext(), h.svc.Media, req.Images, req.Folder)
	if err != nil {
		return h.fail(c, err)
	}
	urls := make([]string, len(assets))
	for i, a := range assets {
		urls[i] = a.URL
	}
	return c.JSON(fiber.Map{"urls": urls})
}
