package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-cms/model"
)

func TestSettingsService_Get_CreatesDefaults(t *testing.T) {
	repo := &memSettingsRepo{}
	svc := NewSettingsService(repo, newTestLogger(t))

	settings, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.SiteSettingsType, settings.Type)
	assert.Equal(t, "Pawan Krishna Tours & Travells", settings.Company.Name)
	require.NotNil(t, settings.Footer)
	assert.Equal(t, "info@travelagency.com", settings.Footer.Email)
	assert.NotNil(t, repo.doc)
}

func TestSettingsService_Get_BackfillsFooter(t *testing.T) {
	stored := model.DefaultSettings()
	stored.Footer = &model.Footer{Email: "owner@example.com"}
	repo := &memSettingsRepo{doc: &stored}
	svc := NewSettingsService(repo, newTestLogger(t))

	settings, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", settings.Footer.Email)
	require.NotNil(t, settings.Footer.DeveloperCredit)
	assert.Equal(t, "", *settings.Footer.DeveloperCredit)
	assert.Equal(t, 1, repo.replaced)

	_, err = svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.replaced)
}

func TestSanitizeSettings(t *testing.T) {
	fields := SanitizeSettings(map[string]interface{}{
		"type":      "other",
		"_id":       "abc",
		"$where":    "1",
		"createdAt": "2024-01-01",
		"company":   map[string]interface{}{"name": "Acme"},
		"heroImages": []interface{}{
			"https://a.test/1.jpg",
			map[string]interface{}{"url": "https://a.test/2.jpg"},
			map[string]interface{}{"secure_url": "https://a.test/3.jpg"},
			map[string]interface{}{"other": "x"},
			nil,
		},
	})

	assert.NotContains(t, fields, "type")
	assert.NotContains(t, fields, "_id")
	assert.NotContains(t, fields, "$where")
	assert.NotContains(t, fields, "createdAt")
	assert.Contains(t, fields, "company")
	assert.Equal(t, []string{"https://a.test/1.jpg", "https://a.test/2.jpg", "https://a.test/3.jpg"}, fields["heroImages"])
}

func TestSettingsService_Update(t *testing.T) {
	repo := &memSettingsRepo{}
	svc := NewSettingsService(repo, newTestLogger(t))

	_, err := svc.Update(context.Background(), map[string]interface{}{"type": "x", "heroImages": []interface{}{}})

	require.NoError(t, err)
	require.Len(t, repo.upserts, 1)
	assert.NotContains(t, repo.upserts[0], "type")
	assert.Contains(t, repo.upserts[0], "updatedAt")
	assert.Equal(t, []string{}, repo.upserts[0]["heroImages"])
}
