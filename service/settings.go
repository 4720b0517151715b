package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-cms/model"
	"travel-cms/service/ports"
)

// Keys the client may not set through the settings update.
var protectedSettingsKeys = []string{"type", "_id", "createdAt", "updatedAt"}

type SettingsService struct {
	repo   ports.SettingsRepo
	logger logger.Logger
	now    func() time.Time
}

func NewSettingsService(repo ports.SettingsRepo, logger logger.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger, now: time.Now}
}

// Get returns the site settings, creating the defaults on first use and
// filling footer keys that older documents lack.
func (s *SettingsService) Get(ctx context.Context) (model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return s.createDefaults(ctx)
	}
	if err != nil {
		return model.Settings{}, err
	}

	if !BackfillFooter(&settings) {
		return settings, nil
	}
	settings.UpdatedAt = model.NewDate(s.now().UTC())
	if err = s.repo.Replace(ctx, settings); err != nil {
		return model.Settings{}, fmt.Errorf("backfill settings footer: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) createDefaults(ctx context.Context) (model.Settings, error) {
	now := model.NewDate(s.now().UTC())
	settings := model.DefaultSettings()
	settings.Id = primitive.NewObjectID()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	if err := s.repo.Create(ctx, settings); err != nil {
		// A concurrent request may have created them first.
		if errors.Is(err, model.ErrDuplicateKey) {
			return s.repo.Get(ctx)
		}
		return model.Settings{}, fmt.Errorf("create default settings: %w", err)
	}
	s.logger.Info("default site settings created")
	return settings, nil
}

// BackfillFooter reports whether it changed anything.
func BackfillFooter(settings *model.Settings) bool {
	if settings.Footer == nil {
		settings.Footer = model.DefaultFooter()
		return true
	}
	changed := false
	if settings.Footer.DeveloperCredit == nil {
		credit := ""
		settings.Footer.DeveloperCredit = &credit
		changed = true
	}
	if settings.Footer.DeveloperLink == nil {
		link := ""
		settings.Footer.DeveloperLink = &link
		changed = true
	}
	return changed
}

// Update merges body into the stored settings with $set semantics.
func (s *SettingsService) Update(ctx context.Context, body map[string]interface{}) (model.Settings, error) {
	fields := SanitizeSettings(body)
	now := s.now().UTC()
	fields["updatedAt"] = now

	settings, err := s.repo.Upsert(ctx, fields, bson.M{"createdAt": now})
	if err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

// SanitizeSettings drops keys the client may not write, including any that
// look like update operators, and reduces heroImages to a list of URLs.
func SanitizeSettings(body map[string]interface{}) bson.M {
	fields := bson.M{}
	for k, v := range body {
		if strings.HasPrefix(k, "$") {
			continue
		}
		fields[k] = v
	}
	for _, k := range protectedSettingsKeys {
		delete(fields, k)
	}

	if raw, ok := fields["heroImages"].([]interface{}); ok {
		urls := []string{}
		for _, item := range raw {
			if url := heroImageURL(item); url != "" {
				urls = append(urls, url)
			}
		}
		fields["heroImages"] = urls
	}
	return fields
}

func heroImageURL(item interface{}) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]interface{}:
		for _, key := range []string{"url", "secure_url", "type"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
